package main

import (
	"fmt"
	"io"
	"strconv"

	"docshard/internal/filter"
)

// printReport writes the end-of-run summary to w (stderr in practice; the
// shard files are the run's only data product). Per-category counts appear
// only when the quality filters ran.
func printReport(w io.Writer, outputDir string, stats filter.Stats, filtered bool) {
	fmt.Fprintf(w, "Extracted %d documents to %s\n", stats.Accepted, outputDir)
	if !filtered {
		return
	}

	rows := [][]string{
		{"Documents seen", strconv.Itoa(stats.Seen)},
		{"Rejected: too short", strconv.Itoa(stats.Short)},
		{"Rejected: hiragana ratio", strconv.Itoa(stats.Hiragana)},
		{"Rejected: line repetition", strconv.Itoa(stats.Repetition)},
		{"Accepted", strconv.Itoa(stats.Accepted)},
		{"Acceptance rate", fmt.Sprintf("%.1f%%", stats.AcceptanceRate()*100)},
	}
	fmt.Fprintln(w, renderTable([]string{"Filter statistics", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
}
