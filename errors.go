package tailor

import "errors"

// ErrNoPattern is returned by export entry points when there is no
// generated pattern to export. No partial output is produced.
var ErrNoPattern = errors.New("tailor: no pattern to export, generate a pattern first")
