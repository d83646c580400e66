// Package sedproc invokes the external regex substitutor that backs the
// editor's "regex on region" command. The substitutor itself is
// not part of the core: only its invocation contract is.
package sedproc

import (
	"os"
	"os/exec"
)

// Substitutor runs an external sed-equivalent: argv is
// `<name> <script> <input>`, stdout redirected to output, stderr
// discarded. A zero exit status followed by a non-empty output file means
// success; a nonzero exit or empty output is reported as
// errSubprocessFailed, a substitutor missing from PATH as errNotFound, and
// the caller surfaces either as a failure.
type Substitutor struct {
	// Name is the executable looked up on PATH.
	Name string
}

// New returns a Substitutor using name, looked up on PATH at Run time.
func New(name string) *Substitutor {
	return &Substitutor{Name: name}
}

// Run invokes the substitutor against script and input, writing its
// standard output to outputPath. It reports an error if the executable
// can't be started, exits nonzero, or its output is empty.
func (s *Substitutor) Run(script, input, outputPath string) error {
	path, err := exec.LookPath(s.Name)
	if err != nil {
		return errNotFound
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	cmd := exec.Command(path, script, input)
	cmd.Stdout = out
	cmd.Stderr = nil // discarded

	if err := cmd.Run(); err != nil {
		return errSubprocessFailed
	}

	info, err := os.Stat(outputPath)
	if err != nil || info.Size() == 0 {
		return errSubprocessFailed
	}
	return nil
}
