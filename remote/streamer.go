package remote

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"ebs-image-builder/resources"

	"github.com/chainguard-dev/clog"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"
)

var _ resources.ImageStreamer = &SSHStreamer{}

const defaultKeepAliveInterval = 30 * time.Second

// SSHStreamer gzip-compresses a local file into the standard input of a
// remote command, which is expected to decompress it
type SSHStreamer struct {
	logger            *clog.Logger
	keepAliveInterval time.Duration
}

func NewSSHStreamer(logger *clog.Logger) *SSHStreamer {
	return &SSHStreamer{
		logger:            logger.With("remote", "SSHStreamer"),
		keepAliveInterval: defaultKeepAliveInterval,
	}
}

type countingReader struct {
	r io.Reader
	n atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}

func (s *SSHStreamer) Stream(localPath string, target resources.RemoteCommand) error {
	startTime := time.Now()
	defer func() {
		s.logger.Infof("completed Stream() of %s in %f minutes", localPath, time.Since(startTime).Minutes())
	}()

	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("opening image: %w", err)
	}
	defer f.Close() //nolint:errcheck

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("reading image size: %w", err)
	}

	client, err := dial(target)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("opening session on %s: %w", target.Host, err)
	}
	defer session.Close() //nolint:errcheck

	stdin, err := session.StdinPipe()
	if err != nil {
		return fmt.Errorf("opening remote stdin: %w", err)
	}

	var stderr bytes.Buffer
	session.Stderr = &stderr

	line := Compose(target)
	s.logger.Infof("streaming %s (%d bytes) to %q on %s", localPath, info.Size(), line, target.Host)
	if err := session.Start(line); err != nil {
		return fmt.Errorf("starting %q on %s: %w", target.Command, target.Host, err)
	}

	source := &countingReader{r: f}
	done := make(chan struct{})
	go s.keepAlive(client, source, info.Size(), done)
	defer close(done)

	g := errgroup.Group{}
	g.Go(func() error {
		defer stdin.Close() //nolint:errcheck

		gw := gzip.NewWriter(stdin)
		if _, err := io.Copy(gw, source); err != nil {
			return fmt.Errorf("compressing %s: %w", localPath, err)
		}
		if err := gw.Close(); err != nil {
			return fmt.Errorf("flushing compressed stream: %w", err)
		}
		return nil
	})

	waitErr := session.Wait()
	copyErr := g.Wait()

	var errs []error
	if copyErr != nil {
		errs = append(errs, copyErr)
	}

	if waitErr != nil {
		var exitErr *ssh.ExitError
		if errors.As(waitErr, &exitErr) {
			errs = append(errs, &ExitError{Command: target.Command, Status: exitErr.ExitStatus(), Stderr: stderr.String()})
		} else {
			errs = append(errs, fmt.Errorf("streaming to %s: %w", target.Host, waitErr))
		}
	}

	return errors.Join(errs...)
}

// keepAlive keeps idle NAT and firewall state alive during long writes and
// logs progress while doing so
func (s *SSHStreamer) keepAlive(client *ssh.Client, source *countingReader, total int64, done <-chan struct{}) {
	ticker := time.NewTicker(s.keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if _, _, err := client.SendRequest("keepalive@openssh.com", true, nil); err != nil {
				s.logger.Warnf("keepalive failed: %s", err)
			}
			s.logger.Infof("streamed %d of %d bytes", source.n.Load(), total)
		}
	}
}
