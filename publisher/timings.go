package publisher

import (
	"time"

	"ebs-image-builder/config"
	"ebs-image-builder/ephemeral"
	"ebs-image-builder/poller"
)

// Timings bounds every wait of the orchestrators
type Timings struct {
	InstanceRunning   poller.Window
	SSHReady          poller.Window
	VolumeAvailable   poller.Window
	VolumeAttached    poller.Window
	SnapshotCompleted poller.Window
	VolumeDetached    poller.Window
	InstallerStopped  poller.Window
	ImageVisible      poller.Window
	ImageAvailable    poller.Window

	// AttachSettle is slept after a volume reports attached. EC2 exposes the
	// device to the guest some time after the attachment state changes.
	AttachSettle time.Duration

	Teardown ephemeral.SetConfig
}

var DefaultTimings = Timings{
	InstanceRunning:   poller.Window{Interval: 5 * time.Second, Timeout: 300 * time.Second},
	SSHReady:          poller.Window{Interval: 1 * time.Second, Timeout: 300 * time.Second},
	VolumeAvailable:   poller.Window{Interval: 10 * time.Second, Timeout: 600 * time.Second},
	VolumeAttached:    poller.Window{Interval: 10 * time.Second, Timeout: 120 * time.Second},
	SnapshotCompleted: poller.Window{Interval: 10 * time.Second, Timeout: 1200 * time.Second},
	VolumeDetached:    poller.Window{Interval: 10 * time.Second, Timeout: 120 * time.Second},
	InstallerStopped:  poller.Window{Interval: 10 * time.Second, Timeout: 1800 * time.Second},
	ImageVisible:      poller.Window{Interval: 2 * time.Second, Timeout: 60 * time.Second},
	ImageAvailable:    poller.Window{Interval: 10 * time.Second, Timeout: 1200 * time.Second},
	AttachSettle:      20 * time.Second,
	Teardown:          ephemeral.DefaultSetConfig,
}

// TimingsFromConfig applies the configured overrides to DefaultTimings
func TimingsFromConfig(t config.Timeouts) Timings {
	timings := DefaultTimings

	override(&timings.InstanceRunning, t.InstanceRunningSeconds)
	override(&timings.SSHReady, t.SSHReadySeconds)
	override(&timings.VolumeAvailable, t.VolumeAvailableSeconds)
	override(&timings.VolumeAttached, t.VolumeAttachedSeconds)
	override(&timings.SnapshotCompleted, t.SnapshotCompletedSeconds)
	override(&timings.VolumeDetached, t.VolumeDetachedSeconds)
	override(&timings.InstallerStopped, t.InstallerStoppedSeconds)
	override(&timings.ImageAvailable, t.ImageAvailableSeconds)
	override(&timings.Teardown.TerminateWindow, t.InstanceTerminatedSeconds)

	if t.AttachSettleSeconds != nil {
		timings.AttachSettle = time.Duration(*t.AttachSettleSeconds) * time.Second
	}

	return timings
}

func override(w *poller.Window, seconds int) {
	if seconds > 0 {
		w.Timeout = time.Duration(seconds) * time.Second
	}
}
