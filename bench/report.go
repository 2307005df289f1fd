package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// WriteTable writes samples as an aligned table, one row per sample in the
// given order. The speedup column compares each median with the sample of
// case baseline at the same suite and size; it reads "-" when no such
// sample exists. Growth samples also show their storage counters.
func WriteTable(w io.Writer, samples []Sample, baseline string) error {
	base := make(map[string]Sample)
	for _, s := range samples {
		if s.Case == baseline {
			base[baselineKey(s)] = s
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintln(tw, "suite\tcase\tsize\tmedian\tspeedup\treallocs\tcopies\tbytes\t"); err != nil {
		return err
	}
	for _, s := range samples {
		speedup := "-"
		if b, ok := base[baselineKey(s)]; ok {
			speedup = fmt.Sprintf("%.2fx", Ratio(b.Median, s.Median))
		}
		reallocs, copies, bytes := "-", "-", "-"
		if s.Bytes > 0 {
			reallocs = humanize.Comma(int64(s.Reallocations))
			copies = humanize.Comma(int64(s.Copies))
			bytes = humanize.IBytes(s.Bytes)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			s.Suite, s.Case, humanize.Comma(int64(s.Size)), s.Median, speedup, reallocs, copies, bytes); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func baselineKey(s Sample) string { return fmt.Sprintf("%s@%d", s.Suite, s.Size) }
