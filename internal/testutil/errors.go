package testutil

import "errors"

// ErrSimulated is a sentinel error for collaborator failure paths (audit store down).
var ErrSimulated = errors.New("simulated error for testing")
