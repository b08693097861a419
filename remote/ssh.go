package remote

import (
	"fmt"
	"net"
	"os"
	"time"

	"ebs-image-builder/resources"

	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh"
)

const (
	defaultSSHPort = "22"
	defaultUser    = "root"
	dialTimeout    = 10 * time.Second
)

// ExitError is returned when a remote command ran but exited non-zero
type ExitError struct {
	Command string
	Status  int
	Stderr  string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("remote command %q exited with status %d: %s", e.Command, e.Status, e.Stderr)
}

// Compose returns the command line sent to the remote shell. A prefix runs
// the whole command through a shell so pipelines are elevated too.
func Compose(cmd resources.RemoteCommand) string {
	if cmd.Prefix == "" {
		return cmd.Command
	}
	return cmd.Prefix + " " + shellquote.Join("sh", "-c", cmd.Command)
}

func address(host string) string {
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, defaultSSHPort)
}

func dial(cmd resources.RemoteCommand) (*ssh.Client, error) {
	key, err := os.ReadFile(cmd.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("reading private key: %w", err)
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}

	user := cmd.User
	if user == "" {
		user = defaultUser
	}

	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		// Hosts are freshly launched instances whose keys are not known in advance.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec
		Timeout:         dialTimeout,
	}

	client, err := ssh.Dial("tcp", address(cmd.Host), config)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s as %s: %w", cmd.Host, user, err)
	}

	return client, nil
}
