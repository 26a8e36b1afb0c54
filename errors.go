// errors

package msgfilter

import "errors"

var (
	ErrInvalidCommitID        = errors.New("invalid commit id")
	ErrDuplicateCommit        = errors.New("duplicate commit in replacement table")
	ErrInvalidMessageEncoding = errors.New("replacement message is not valid utf-8")
)
