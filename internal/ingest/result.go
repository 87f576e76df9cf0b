// Package ingest builds the published JSON payloads: rosters, the derived
// player stats aggregate, and the master schedule. Each builder writes one
// file to the output directory; the API reads the same files back through
// the source store.
package ingest

import "fmt"

// Result tracks counts and errors from an ingest run.
type Result struct {
	PlayersWritten int
	GamesWritten   int
	FilesWritten   int
	Errors         []string
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.PlayersWritten += other.PlayersWritten
	r.GamesWritten += other.GamesWritten
	r.FilesWritten += other.FilesWritten
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"players=%d games=%d files=%d errors=%d",
		r.PlayersWritten, r.GamesWritten, r.FilesWritten, len(r.Errors),
	)
}
