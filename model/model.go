package model

// Record identifies one hotline entry touched by a scan.
type Record struct {
	Name string
	Date string
	Line int
}

// Summary holds the results of a run for display.
type Summary struct {
	Updated      []string
	Unattributed []string
	Unchanged    int
	Message      string
}
