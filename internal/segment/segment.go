package segment

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"docshard/internal/filter"
	"docshard/internal/textnorm"
)

// maxLineBytes bounds a single input line. CC-100 sentences are short;
// anything beyond this is a corrupt stream and surfaces as a fatal error.
const maxLineBytes = 4 << 20

// Sink receives accepted documents in acceptance order.
type Sink interface {
	Write(lines []string, id int) error
}

// Options controls one extraction run.
type Options struct {
	// Limit stops the run after this many accepted documents; 0 means
	// unlimited. The check happens only at document boundaries.
	Limit int
	// FilterEnabled applies the quality checks; when false every non-empty
	// candidate is accepted.
	FilterEnabled bool
	// Thresholds configures the quality checks.
	Thresholds filter.Thresholds
}

// Run consumes the line stream from r until EOF, the accepted-document
// limit, or context cancellation, whichever comes first. Cancellation is
// cooperative and observed only at document boundaries, so documents are
// never written partially.
func Run(ctx context.Context, r io.Reader, sink Sink, opts Options) (filter.Stats, error) {
	var (
		stats  filter.Stats
		doc    []string
		nextID int
	)

	flush := func() error {
		if len(doc) == 0 {
			return nil
		}
		lines := doc
		doc = nil
		verdict := filter.Accept
		if opts.FilterEnabled {
			verdict = filter.Evaluate(lines, opts.Thresholds)
		}
		stats.Record(verdict)
		if verdict != filter.Accept {
			return nil
		}
		if err := sink.Write(lines, nextID); err != nil {
			return err
		}
		nextID++
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			// Boundary. Consecutive blanks leave the accumulator empty and
			// are no-ops.
			if len(doc) == 0 {
				continue
			}
			if err := flush(); err != nil {
				return stats, err
			}
			if opts.Limit > 0 && stats.Accepted >= opts.Limit {
				return stats, nil
			}
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			continue
		}
		cleaned := textnorm.Clean(line)
		if cleaned == "" || textnorm.Boilerplate(cleaned) {
			continue
		}
		doc = append(doc, cleaned)
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read input: %w", err)
	}

	// Trailing document in corpora without a final blank line.
	if len(doc) > 0 && (opts.Limit == 0 || stats.Accepted < opts.Limit) {
		if err := flush(); err != nil {
			return stats, err
		}
	}
	return stats, nil
}
