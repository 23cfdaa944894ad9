package project

import "fmt"

// Result counts the files seen by a run.
type Result struct {
	// Total is the number of Java files processed.
	Total int
	// Arranged is the number of files whose member order changed.
	Arranged int
	// Skipped is the number of files that could not be parsed.
	Skipped int
	// Faulted is the number of files that parsed but could not be arranged.
	Faulted int
}

// Add returns the sum of r and other.
func (r Result) Add(other Result) Result {
	return Result{
		Total:    r.Total + other.Total,
		Arranged: r.Arranged + other.Arranged,
		Skipped:  r.Skipped + other.Skipped,
		Faulted:  r.Faulted + other.Faulted,
	}
}

func (r Result) String() string {
	return fmt.Sprintf("Processed %d files (%d arranged).", r.Total, r.Arranged)
}
