package poller

import (
	"errors"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"
)

const defaultLogEvery = 10

// Window bounds a poll: checks are Interval apart and sleeping never exceeds Timeout.
type Window struct {
	Interval time.Duration
	Timeout  time.Duration
}

// Attempts returns ceil(Timeout/Interval), and at least one.
func (w Window) Attempts() int {
	if w.Interval <= 0 || w.Timeout <= 0 {
		return 1
	}
	n := int((w.Timeout + w.Interval - 1) / w.Interval)
	if n < 1 {
		return 1
	}
	return n
}

// Check reports whether the polled resource reached the desired condition.
type Check func() (bool, error)

type Config struct {
	Resource string
	Desired  string
	Window

	// LogEvery controls how often progress is logged; defaults to every 10 checks.
	LogEvery int

	// IsFatal classifies check errors which must abort the poll. Errors wrapped
	// with Fatal always abort.
	IsFatal func(error) bool

	// OnTimeout runs once when the window is exhausted, before Poll returns.
	OnTimeout func()
}

// TimeoutError is returned when the window is exhausted without the check succeeding
type TimeoutError struct {
	Resource string
	Desired  string
	Timeout  time.Duration
	Attempts int
	LastErr  error
}

func (e *TimeoutError) Error() string {
	msg := fmt.Sprintf("timed out after %s polling on resource %s", e.Timeout, e.Resource)
	if e.Desired != "" {
		msg = fmt.Sprintf("%s to become %s", msg, e.Desired)
	}
	if e.LastErr != nil {
		msg = fmt.Sprintf("%s (last error: %s)", msg, e.LastErr)
	}
	return msg
}

// FatalError is returned when a check fails with a non-recoverable error
type FatalError struct {
	Resource string
	Err      error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("polling on resource %s: %s", e.Resource, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

type fatalMark struct {
	error
}

func (f fatalMark) Unwrap() error {
	return f.error
}

// Fatal marks err so that Poll aborts immediately when a check returns it.
func Fatal(err error) error {
	return fatalMark{err}
}

func IsMarkedFatal(err error) bool {
	var f fatalMark
	return errors.As(err, &f)
}

// Poll runs check until it succeeds, fails fatally, or the window is exhausted.
// A check that succeeds on its k-th invocation is invoked exactly k times.
func Poll(logger *clog.Logger, c Config, check Check) error {
	attempts := c.Attempts()
	logEvery := c.LogEvery
	if logEvery <= 0 {
		logEvery = defaultLogEvery
	}

	logger = logger.With("resource", c.Resource)
	logger.Debugf("waiting up to %s for %s to become %s", c.Timeout, c.Resource, c.Desired)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		done, err := check()
		if err != nil {
			if IsMarkedFatal(err) || (c.IsFatal != nil && c.IsFatal(err)) {
				return &FatalError{Resource: c.Resource, Err: err}
			}
			lastErr = err
			logger.Warnf("check %d/%d on %s failed: %s", attempt, attempts, c.Resource, err)
		} else if done {
			logger.Debugf("%s became %s after %d checks", c.Resource, c.Desired, attempt)
			return nil
		}

		if attempt%logEvery == 0 {
			logger.Infof("still waiting for %s to become %s (%d/%d)", c.Resource, c.Desired, attempt, attempts)
		}

		if attempt < attempts {
			time.Sleep(c.Interval)
		}
	}

	logger.Warnf("timed out waiting for %s to become %s", c.Resource, c.Desired)
	if c.OnTimeout != nil {
		c.OnTimeout()
	}

	return &TimeoutError{
		Resource: c.Resource,
		Desired:  c.Desired,
		Timeout:  c.Timeout,
		Attempts: attempts,
		LastErr:  lastErr,
	}
}
