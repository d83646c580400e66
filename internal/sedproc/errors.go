package sedproc

import "errors"

var (
	errNotFound         = errors.New("sedproc: substitutor not found on PATH")
	errSubprocessFailed = errors.New("sedproc: substitutor exited nonzero or produced no output")
)
