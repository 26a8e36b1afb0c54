package msgfilter

import (
	"encoding/hex"

	"github.com/go-git/go-git/v5/plumbing"
)

// DecodeHashHex decodes a hex encoded sha1 ([plumbing.Hash]).
// It differs from [plumbing.NewHash] for [plumbing.NewHash] doesn't
// check [hex.DecodeString] has error or the length of the decoded bytes.
//
// Only the canonical form is accepted: exactly 40 lower-case hex characters.
// Anything else, including the empty string, returns [ErrInvalidCommitID].
func DecodeHashHex(str string) (plumbing.Hash, error) {
	if len(str) != 2*len(plumbing.ZeroHash) {
		return plumbing.ZeroHash, ErrInvalidCommitID
	}

	v, err := hex.DecodeString(str)
	if err != nil {
		return plumbing.ZeroHash, ErrInvalidCommitID
	}

	r := plumbing.Hash{}

	copy(r[:], v)

	// hex.DecodeString takes upper case too, which git never prints.
	if r.String() != str {
		return plumbing.ZeroHash, ErrInvalidCommitID
	}

	return r, nil
}

// MustDecodeHashHex decodes the input str to [plumbing.Hash] and
// panics if any error is encountered.
func MustDecodeHashHex(str string) plumbing.Hash {
	v, err := DecodeHashHex(str)
	if err != nil {
		panic(err)
	}

	return v
}
