// Package present prints an extracted top list as ranked plain text.
package present

import (
	"fmt"
	"io"

	"github.com/doingodswork/rttop/internal/rt"
)

// MissingScore is printed in place of the score of movies that don't have one.
const MissingScore = "n/a"

type Options struct {
	// NoScores prints only the ranked movie names.
	NoScores bool
}

// Print writes the list's title followed by up to length ranked lines.
// It never prints more lines than there are entries and returns the number of ranked lines written.
func Print(w io.Writer, res rt.PageResult, length int, opts Options) (int, error) {
	if _, err := fmt.Fprintln(w, res.Title); err != nil {
		return 0, err
	}

	n := length
	if n > len(res.Entries) {
		n = len(res.Entries)
	}
	for i := 0; i < n; i++ {
		entry := res.Entries[i]
		var err error
		if opts.NoScores {
			_, err = fmt.Fprintf(w, "%d. %v\n", i+1, entry.Movie)
		} else {
			score := entry.Score
			if score == "" {
				score = MissingScore
			}
			_, err = fmt.Fprintf(w, "%d. %v: %v\n", i+1, entry.Movie, score)
		}
		if err != nil {
			return i, err
		}
	}
	return n, nil
}
