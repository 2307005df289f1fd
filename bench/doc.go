// Package bench times competing strategies of the dynarray, matrix, arrayops
// and window packages on growing input sizes.
//
// A Runner repeats each case, keeps the median duration, stores the sample in
// an in-memory indexed Store and logs it through zap. Suites verify that all
// strategies of a problem agree before anything is timed. WriteTable renders
// the stored samples with a speed-up column against a baseline case.
package bench
