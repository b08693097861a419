package publisher

import (
	"ebs-image-builder/driver"
	"ebs-image-builder/ephemeral"
	"ebs-image-builder/poller"
	"ebs-image-builder/resources"

	"github.com/chainguard-dev/clog"
)

// waitForInstance polls until the instance reaches desired or one of the
// states in past, which count as having gone through desired. An instance
// that is shutting down or terminated can never get there.
func waitForInstance(logger *clog.Logger, d resources.InstanceDriver, instance resources.Instance, desired string, w poller.Window, onTimeout func(), past ...string) (resources.Instance, error) {
	current := instance
	err := poller.Poll(logger, poller.Config{
		Resource:  instance.ID,
		Desired:   desired,
		Window:    w,
		IsFatal:   driver.IsFatalError,
		OnTimeout: onTimeout,
	}, func() (bool, error) {
		described, err := d.Describe(instance)
		if err != nil {
			return false, err
		}
		current = described

		switch described.State {
		case desired:
			return true, nil
		case resources.InstanceStateShuttingDown, resources.InstanceStateTerminated:
			return false, poller.Fatal(postconditionError("instance "+instance.ID, desired, described.State))
		}
		for _, state := range past {
			if described.State == state {
				return true, nil
			}
		}
		return false, nil
	})
	return current, err
}

func waitForVolume(logger *clog.Logger, d resources.VolumeDriver, volume resources.Volume, desired string, w poller.Window, done func(resources.Volume) bool) (resources.Volume, error) {
	current := volume
	err := poller.Poll(logger, poller.Config{
		Resource: volume.ID,
		Desired:  desired,
		Window:   w,
		IsFatal:  driver.IsFatalError,
	}, func() (bool, error) {
		described, err := d.Describe(volume)
		if err != nil {
			return false, err
		}
		current = described

		if described.State == resources.VolumeStateError {
			return false, poller.Fatal(postconditionError("volume "+volume.ID, desired, described.State))
		}
		return done(described), nil
	})
	return current, err
}

func waitForSnapshot(logger *clog.Logger, d resources.SnapshotDriver, snapshot resources.Snapshot, w poller.Window, onTimeout func()) (resources.Snapshot, error) {
	current := snapshot
	err := poller.Poll(logger, poller.Config{
		Resource:  snapshot.ID,
		Desired:   resources.SnapshotStateCompleted,
		Window:    w,
		IsFatal:   driver.IsFatalError,
		OnTimeout: onTimeout,
	}, func() (bool, error) {
		described, err := d.Describe(snapshot)
		if err != nil {
			return false, err
		}
		current = described

		switch described.State {
		case resources.SnapshotStateCompleted:
			return true, nil
		case resources.SnapshotStateError:
			return false, poller.Fatal(postconditionError("snapshot "+snapshot.ID, resources.SnapshotStateCompleted, described.State))
		}
		return false, nil
	})
	return current, err
}

// waitForImageVisible polls until a new image shows up in DescribeImages
func waitForImageVisible(logger *clog.Logger, d resources.AmiDriver, ami resources.Ami, w poller.Window) (resources.Ami, error) {
	current := ami
	err := poller.Poll(logger, poller.Config{
		Resource: ami.ID,
		Desired:  "visible",
		Window:   w,
		IsFatal:  driver.IsFatalError,
	}, func() (bool, error) {
		described, err := d.Describe(ami)
		if err != nil {
			return false, err
		}
		if !described.Exists {
			return false, nil
		}
		current = described
		return true, nil
	})
	return current, err
}

func waitForImageAvailable(logger *clog.Logger, d resources.AmiDriver, ami resources.Ami, w poller.Window, onTimeout func()) (resources.Ami, error) {
	current := ami
	err := poller.Poll(logger, poller.Config{
		Resource:  ami.ID,
		Desired:   resources.AmiStateAvailable,
		Window:    w,
		IsFatal:   driver.IsFatalError,
		OnTimeout: onTimeout,
	}, func() (bool, error) {
		described, err := d.Describe(ami)
		if err != nil {
			return false, err
		}
		if !described.Exists {
			return false, nil
		}
		current = described

		switch described.State {
		case resources.AmiStateAvailable:
			return true, nil
		case resources.AmiStateFailed:
			return false, poller.Fatal(postconditionError("image "+ami.ID, resources.AmiStateAvailable, described.State))
		}
		return false, nil
	})
	return current, err
}

// releaseOnTimeout tears the set down as soon as a wait on one of its
// resources times out. The deferred Release of the caller then does nothing.
func releaseOnTimeout(logger *clog.Logger, set *ephemeral.Set) func() {
	return func() {
		logger.Warnf("releasing ephemeral resources after timeout")
		release(logger, set)
	}
}

// discardOnFailure runs discard for a wait that failed without timing out.
// Timeouts have already run it through OnTimeout.
func discardOnFailure(err error, discard func()) {
	if poller.OutcomeOf(err) == poller.OutcomeFatal {
		discard()
	}
}

func release(logger *clog.Logger, set *ephemeral.Set) {
	report := set.Release()
	if err := report.Err(); err != nil {
		logger.Warnf("ephemeral resources were not all released: %s", err)
	}
}
