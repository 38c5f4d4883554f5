package sshx

import "fmt"

// ConnectionError indicates that the connection to the remote host
// could not be established, either due to network setup or due to
// authentication. The upstream error message is preserved verbatim.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("SSH connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// CommandExecutionError indicates that a command could not be
// dispatched or failed before the remote side reported an exit
// status. A non-zero exit status is not an execution error.
type CommandExecutionError struct {
	Err error
}

func (e *CommandExecutionError) Error() string {
	return fmt.Sprintf("SSH command failed: %v", e.Err)
}

func (e *CommandExecutionError) Unwrap() error {
	return e.Err
}
