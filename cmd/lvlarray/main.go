// Command lvlarray times the growth, transpose, multiply, rotation and
// window strategies of this module and prints one table per suite.
//
// Usage:
//
//	lvlarray multiply --sizes 128,256 --blocks 16,32 --workers 0
//	lvlarray all --reps 3 --log-level debug --json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
