package remote

import (
	"bytes"
	"errors"
	"fmt"

	"ebs-image-builder/resources"

	"github.com/chainguard-dev/clog"
	"golang.org/x/crypto/ssh"
)

var _ resources.RemoteExecutor = &SSHExecutor{}

// SSHExecutor runs one command per connection
type SSHExecutor struct {
	logger *clog.Logger
}

func NewSSHExecutor(logger *clog.Logger) *SSHExecutor {
	return &SSHExecutor{logger: logger.With("remote", "SSHExecutor")}
}

// Execute returns the output of the command. Connection failures are returned
// as plain errors; a command that exits non-zero returns its output together
// with an *ExitError.
func (e *SSHExecutor) Execute(cmd resources.RemoteCommand) (resources.RemoteOutput, error) {
	client, err := dial(cmd)
	if err != nil {
		return resources.RemoteOutput{}, err
	}
	defer client.Close() //nolint:errcheck

	session, err := client.NewSession()
	if err != nil {
		return resources.RemoteOutput{}, fmt.Errorf("opening session on %s: %w", cmd.Host, err)
	}
	defer session.Close() //nolint:errcheck

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	line := Compose(cmd)
	e.logger.Debugf("running %q on %s", line, cmd.Host)

	err = session.Run(line)
	output := resources.RemoteOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			output.ExitStatus = exitErr.ExitStatus()
			return output, &ExitError{Command: cmd.Command, Status: output.ExitStatus, Stderr: output.Stderr}
		}
		return output, fmt.Errorf("running %q on %s: %w", cmd.Command, cmd.Host, err)
	}

	return output, nil
}
