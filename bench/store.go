package bench

import (
	"fmt"
	"sort"
	"sync"

	memdb "github.com/hashicorp/go-memdb"
)

const (
	tableSamples   = "samples"
	indexID        = "id"
	indexSuite     = "suite"
	indexSuiteSize = "suite_size"
)

// Store is an in-memory table of samples indexed by id, suite and
// (suite, size). It is safe for concurrent use.
type Store struct {
	db  *memdb.MemDB
	mu  sync.Mutex
	seq int
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableSamples: {
				Name: tableSamples,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexSuite: {
						Name:    indexSuite,
						Indexer: &memdb.StringFieldIndex{Field: "Suite"},
					},
					indexSuiteSize: {
						Name: indexSuiteSize,
						Indexer: &memdb.CompoundIndex{
							Indexes: []memdb.Indexer{
								&memdb.StringFieldIndex{Field: "Suite"},
								&memdb.IntFieldIndex{Field: "Size"},
							},
						},
					},
				},
			},
		},
	}
}

// NewStore returns an empty Store.
func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("bench: new store: %w", err)
	}

	return &Store{db: db}, nil
}

// Insert adds s, assigning its insertion sequence number.
func (st *Store) Insert(s Sample) error {
	st.mu.Lock()
	st.seq++
	s.Seq = st.seq
	st.mu.Unlock()

	txn := st.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(tableSamples, &s); err != nil {
		return fmt.Errorf("bench: insert %s/%s: %w", s.Suite, s.Case, err)
	}
	txn.Commit()

	return nil
}

// Get returns the sample with the given id.
func (st *Store) Get(id string) (Sample, error) {
	txn := st.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableSamples, indexID, id)
	if err != nil {
		return Sample{}, fmt.Errorf("bench: get %s: %w", id, err)
	}
	if raw == nil {
		return Sample{}, fmt.Errorf("bench: get %s: %w", id, ErrNotFound)
	}

	return *raw.(*Sample), nil
}

// BySuite returns every sample of suite in insertion order.
func (st *Store) BySuite(suite string) ([]Sample, error) {
	return st.collect(indexSuite, suite)
}

// BySuiteSize returns the samples of suite measured at size, in insertion order.
func (st *Store) BySuiteSize(suite string, size int) ([]Sample, error) {
	return st.collect(indexSuiteSize, suite, size)
}

// Fastest returns the sample with the smallest median for (suite, size).
func (st *Store) Fastest(suite string, size int) (Sample, error) {
	all, err := st.BySuiteSize(suite, size)
	if err != nil {
		return Sample{}, err
	}
	if len(all) == 0 {
		return Sample{}, fmt.Errorf("bench: fastest %s@%d: %w", suite, size, ErrNotFound)
	}

	best := all[0]
	for _, s := range all[1:] {
		if s.Median < best.Median {
			best = s
		}
	}

	return best, nil
}

// Suites returns the distinct suite names in sorted order.
func (st *Store) Suites() ([]string, error) {
	all, err := st.collect(indexID+"_prefix", "")
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	var out []string
	for _, s := range all {
		if _, ok := seen[s.Suite]; !ok {
			seen[s.Suite] = struct{}{}
			out = append(out, s.Suite)
		}
	}
	sort.Strings(out)

	return out, nil
}

func (st *Store) collect(index string, args ...any) ([]Sample, error) {
	txn := st.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableSamples, index, args...)
	if err != nil {
		return nil, fmt.Errorf("bench: query %s: %w", index, err)
	}

	var out []Sample
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, *raw.(*Sample))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })

	return out, nil
}
