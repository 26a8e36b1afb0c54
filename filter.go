package msgfilter

import (
	"context"
	"fmt"
	"io"
)

// Outcome says what [Filter] did with a message.
type Outcome int

const (
	PassedThrough Outcome = iota
	Substituted
)

func (o Outcome) String() string {
	switch o {
	case PassedThrough:
		return "passed-through"
	case Substituted:
		return "substituted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Filter reads the whole message from r and writes the message for commit id to w.
//
//   - If id is in the table, the replacement is written and the input is discarded.
//   - Otherwise the input bytes are written back unchanged. They are never decoded.
//
// w is written exactly once. Errors are only returned for failing reads or writes.
func Filter(ctx context.Context, table *Table, id string, r io.Reader, w io.Writer) (Outcome, error) {
	original, err := io.ReadAll(r)
	if err != nil {
		return PassedThrough, fmt.Errorf("failed to read message for commit %q: %w", id, err)
	}

	select {
	case <-ctx.Done():
		return PassedThrough, ctx.Err()
	default:
	}

	out, outcome := original, PassedThrough
	if replacement, found := table.Lookup(id); found {
		out, outcome = replacement, Substituted
	}

	logger.Debug("filter message", "commit", id, "outcome", outcome, "in", len(original), "out", len(out))

	if _, err := w.Write(out); err != nil {
		return outcome, fmt.Errorf("failed to write message for commit %q: %w", id, err)
	}

	return outcome, nil
}
