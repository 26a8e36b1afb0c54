// msgfilter is a commit message filter for history rewrites.
// It is meant to be invoked by git filter-branch --msg-filter once per commit:
// the original commit id is read from an environment variable, the raw message from stdin,
// and either a fixed replacement message or the untouched input is written to stdout.
//
// See [Filter] and [Table] for details.
package msgfilter
