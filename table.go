package msgfilter

import (
	"bytes"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/go-git/go-git/v5/plumbing"
)

// Entry is a single replacement: the commit whose message is broken and the message it should have.
type Entry struct {
	Commit  string `yaml:"commit"`
	Message string `yaml:"message"`
}

// Table maps original commit hashes to replacement messages.
// A Table is never modified after construction.
type Table struct {
	replacements map[plumbing.Hash][]byte
}

// NewTable builds a [Table] from entries.
// Commit ids must be full lower-case sha1 hex, unique, and messages must be valid utf-8.
func NewTable(entries ...Entry) (*Table, error) {
	result := &Table{replacements: make(map[plumbing.Hash][]byte, len(entries))}

	for _, e := range entries {
		h, err := DecodeHashHex(e.Commit)
		if err != nil {
			return nil, fmt.Errorf("failed to decode commit %q: %w", e.Commit, err)
		}
		if _, found := result.replacements[h]; found {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCommit, e.Commit)
		}
		if !utf8.ValidString(e.Message) {
			return nil, fmt.Errorf("%w: commit %s", ErrInvalidMessageEncoding, e.Commit)
		}

		result.replacements[h] = []byte(e.Message)
	}

	return result, nil
}

// MustNewTable calls [NewTable] and panics if any error is encountered.
func MustNewTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}

	return t
}

var defaultTable = MustNewTable(
	Entry{Commit: "a933afd78868342c29edad1b8a185f75c7f16829", Message: "docs: 開発メモを更新\n"},
	Entry{Commit: "e12a32d43410b7434e8545bae0a881ab99529904", Message: "master を main にマージ\n"},
)

// DefaultTable returns the compiled-in replacements for the commits with garbled messages.
func DefaultTable() *Table {
	return defaultTable
}

// Lookup returns the replacement for the commit id.
// id must be exactly the form git puts in GIT_COMMIT; no prefix or case folding is done.
func (t *Table) Lookup(id string) ([]byte, bool) {
	h, err := DecodeHashHex(id)
	if err != nil {
		return nil, false
	}

	msg, found := t.replacements[h]
	if !found {
		return nil, false
	}

	return bytes.Clone(msg), true
}

// Len is the number of replacements.
func (t *Table) Len() int {
	return len(t.replacements)
}

// Entries lists the replacements sorted by commit id.
func (t *Table) Entries() []Entry {
	result := make([]Entry, 0, len(t.replacements))
	for h, msg := range t.replacements {
		result = append(result, Entry{Commit: h.String(), Message: string(msg)})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Commit < result[j].Commit })

	return result
}
