package netcheck

import "os/exec"

// CommandRunner abstracts OS command execution so environment checks can
// be tested with canned outputs.
type CommandRunner interface {
	Output(name string, args ...string) ([]byte, error)
}

// RealCommandRunner executes commands on the host.
type RealCommandRunner struct{}

// Output runs the command and returns its stdout.
func (r *RealCommandRunner) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}
