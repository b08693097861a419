package publisher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"ebs-image-builder/driver"
	"ebs-image-builder/driverset"
	"ebs-image-builder/ephemeral"
	"ebs-image-builder/poller"
	"ebs-image-builder/resources"

	"github.com/chainguard-dev/clog"
	"github.com/kballard/go-shellquote"
)

const (
	// AttachDevice is the device name the volume is attached under, which the
	// Xen based utility instances expose as RemoteDevice
	AttachDevice = "/dev/sdh"
	RemoteDevice = "/dev/xvdh"

	rootUser = "root"
	gib      = int64(1) << 30
)

// VolumeSizeGiB returns the smallest whole number of GiB holding size bytes, and at least one
func VolumeSizeGiB(size int64) int64 {
	sizeGiB := (size + gib - 1) / gib
	if sizeGiB < 1 {
		return 1
	}
	return sizeGiB
}

// WriteImageCommand returns the remote shell command that decompresses its
// input onto device. A pipeline only reports the status of dd, so gzip's
// status is passed through a temporary file and checked as well.
func WriteImageCommand(device string) string {
	return fmt.Sprintf(`s=$(mktemp) && (gzip -d -c; echo $? > "$s") | dd of=%s bs=4k && read r < "$s" && rm -f "$s" && [ "$r" = 0 ]`,
		shellquote.Join(device))
}

// ImageUploader writes raw disk images onto EBS volumes through a short lived
// utility instance and snapshots them. It runs one upload at a time.
type ImageUploader struct {
	logger    *clog.Logger
	ds        driverset.RegionDriverSet
	executor  resources.RemoteExecutor
	streamer  resources.ImageStreamer
	registrar *Registrar
	config    Config
	busy      atomic.Bool
}

func NewImageUploader(logger *clog.Logger, ds driverset.RegionDriverSet, executor resources.RemoteExecutor, streamer resources.ImageStreamer, c Config) *ImageUploader {
	return &ImageUploader{
		logger:    logger.With("publisher", "ImageUploader"),
		ds:        ds,
		executor:  executor,
		streamer:  streamer,
		registrar: NewRegistrar(logger, ds, c),
		config:    c,
	}
}

// UploadAndRegister uploads imagePath and registers the snapshot with the
// configured architecture and ephemeral map
func (u *ImageUploader) UploadAndRegister(imagePath string) (resources.Ami, error) {
	snapshot, err := u.Upload(imagePath)
	if err != nil {
		return resources.Ami{}, err
	}

	return u.registrar.RegisterSnapshot(snapshot.ID, u.config.AmiConfiguration.Architecture, !u.config.AmiConfiguration.DisableEphemeralMap)
}

// Upload copies the raw disk image at imagePath into a new EBS snapshot.
// Every resource created on the way is released before it returns.
func (u *ImageUploader) Upload(imagePath string) (resources.Snapshot, error) {
	if !u.busy.CompareAndSwap(false, true) {
		return resources.Snapshot{}, ErrUploadInProgress
	}
	defer u.busy.Store(false)

	createStartTime := time.Now()
	defer func(startTime time.Time) {
		u.logger.Infof("completed Upload() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	info, err := os.Stat(imagePath)
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("reading image file: %w", err)
	}
	if info.IsDir() {
		return resources.Snapshot{}, fmt.Errorf("reading image file: %s is a directory", imagePath)
	}

	set := ephemeral.NewSet(u.logger, u.ds, u.config.Timings.Teardown)
	defer release(u.logger, set)

	instance, keyFile, err := u.launchUtilityInstance(set)
	if err != nil {
		return resources.Snapshot{}, err
	}

	if err := u.enableRoot(instance, keyFile); err != nil {
		return resources.Snapshot{}, err
	}

	volumeDriver := u.ds.VolumeDriver()
	volume, err := volumeDriver.Create(resources.VolumeDriverConfig{
		SizeGB:           VolumeSizeGiB(info.Size()),
		AvailabilityZone: instance.AvailabilityZone,
		Tags:             u.config.resourceTags(),
	})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("creating volume: %w", err)
	}

	attached := false
	defer func() {
		u.discardVolume(volume, attached)
	}()

	_, err = waitForVolume(u.logger, volumeDriver, volume, resources.VolumeStateAvailable, u.config.Timings.VolumeAvailable, func(v resources.Volume) bool {
		return v.State == resources.VolumeStateAvailable
	})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("waiting for volume %s: %w", volume.ID, err)
	}

	err = volumeDriver.Attach(resources.VolumeAttachment{VolumeID: volume.ID, InstanceID: instance.ID, Device: AttachDevice})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("attaching volume %s: %w", volume.ID, err)
	}
	attached = true

	_, err = waitForVolume(u.logger, volumeDriver, volume, resources.VolumeAttachmentAttached, u.config.Timings.VolumeAttached, func(v resources.Volume) bool {
		return v.AttachmentState == resources.VolumeAttachmentAttached
	})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("waiting for volume %s to attach: %w", volume.ID, err)
	}

	if u.config.Timings.AttachSettle > 0 {
		u.logger.Debugf("waiting %s for %s to settle", u.config.Timings.AttachSettle, RemoteDevice)
		time.Sleep(u.config.Timings.AttachSettle)
	}

	if err := u.writeImage(imagePath, instance, keyFile); err != nil {
		return resources.Snapshot{}, err
	}

	snapshotDriver := u.ds.SnapshotDriver()
	snapshot, err := snapshotDriver.Create(resources.SnapshotDriverConfig{
		VolumeID:    volume.ID,
		Description: fmt.Sprintf("%s upload of %s", u.config.ResourceTag, filepath.Base(imagePath)),
		Tags:        u.config.resourceTags(),
	})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("creating snapshot of volume %s: %w", volume.ID, err)
	}

	discard := func() { u.discardSnapshot(snapshot) }
	completed, err := waitForSnapshot(u.logger, snapshotDriver, snapshot, u.config.Timings.SnapshotCompleted, discard)
	if err != nil {
		discardOnFailure(err, discard)
		return resources.Snapshot{}, fmt.Errorf("waiting for snapshot %s: %w", snapshot.ID, err)
	}
	snapshot = completed

	u.logger.Infof("uploaded %s to snapshot %s", imagePath, snapshot.ID)
	return snapshot, nil
}

// launchUtilityInstance creates the access rule, key pair and utility
// instance, tracking each in set as soon as it exists, and waits until the
// instance accepts ssh logins
func (u *ImageUploader) launchUtilityInstance(set *ephemeral.Set) (resources.Instance, *ephemeral.KeyFile, error) {
	name := ephemeralName()
	tags := u.config.resourceTags()

	group, err := u.ds.SecurityGroupDriver().Create(resources.SecurityGroupDriverConfig{
		Name:         name,
		Description:  "temporary ssh access for " + u.config.ResourceTag,
		IngressPorts: []resources.PortRange{{From: 22, To: 22}},
		Tags:         tags,
	})
	if err != nil {
		return resources.Instance{}, nil, fmt.Errorf("creating security group: %w", err)
	}
	set.TrackSecurityGroup(group)

	keyPair, err := u.ds.KeyPairDriver().Create(resources.KeyPairDriverConfig{Name: name, Tags: tags})
	if err != nil {
		return resources.Instance{}, nil, fmt.Errorf("creating key pair: %w", err)
	}

	keyFile, err := ephemeral.WriteKeyFile(keyPair.Name, keyPair.Material)
	set.TrackKeyPair(keyPair, keyFile)
	if err != nil {
		return resources.Instance{}, nil, err
	}

	instanceDriver := u.ds.InstanceDriver()
	instance, err := instanceDriver.Create(resources.InstanceDriverConfig{
		ImageID:         u.config.UtilityImage.ImageID,
		InstanceType:    u.config.UtilityImage.InstanceType,
		KeyName:         keyPair.Name,
		SecurityGroupID: group.ID,
		Tags:            tags,
	})
	if err != nil {
		return resources.Instance{}, nil, fmt.Errorf("launching utility instance: %w", err)
	}
	set.TrackInstance(instance)

	instance, err = waitForInstance(u.logger, instanceDriver, instance, resources.InstanceStateRunning, u.config.Timings.InstanceRunning, releaseOnTimeout(u.logger, set))
	if err != nil {
		return resources.Instance{}, nil, fmt.Errorf("waiting for utility instance %s: %w", instance.ID, err)
	}

	if instance.Address() == "" {
		return resources.Instance{}, nil, postconditionError("utility instance "+instance.ID, "reachable", "without a public address")
	}

	login := u.command(instance, keyFile, u.config.UtilityImage.User, "", "/bin/true")
	err = poller.Poll(u.logger, poller.Config{
		Resource: instance.Address(),
		Desired:  "reachable over ssh",
		Window:   u.config.Timings.SSHReady,
	}, func() (bool, error) {
		if _, err := u.executor.Execute(login); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return resources.Instance{}, nil, fmt.Errorf("waiting for ssh on %s: %w", instance.ID, err)
	}

	return instance, keyFile, nil
}

// enableRoot lets the key pair log in as root and checks that it did
func (u *ImageUploader) enableRoot(instance resources.Instance, keyFile *ephemeral.KeyFile) error {
	user := u.config.UtilityImage.User
	if user != rootUser {
		steps := []string{
			"mkdir -p /root/.ssh",
			"chmod 700 /root/.ssh",
			fmt.Sprintf("cp -f /home/%s/.ssh/authorized_keys /root/.ssh/", user),
			"chmod 600 /root/.ssh/authorized_keys",
		}
		for _, step := range steps {
			cmd := u.command(instance, keyFile, user, u.config.UtilityImage.CommandPrefix, step)
			if _, err := u.executor.Execute(cmd); err != nil {
				return fmt.Errorf("enabling root login on %s: %w", instance.ID, err)
			}
		}
	}

	output, err := u.executor.Execute(u.command(instance, keyFile, rootUser, "", "/bin/id"))
	if err != nil {
		return fmt.Errorf("checking root login on %s: %w", instance.ID, err)
	}
	if !strings.Contains(output.Stdout, "uid=0") {
		return postconditionError("login identity on "+instance.ID, "uid=0", strings.TrimSpace(output.Stdout))
	}

	return nil
}

func (u *ImageUploader) writeImage(imagePath string, instance resources.Instance, keyFile *ephemeral.KeyFile) error {
	write := u.command(instance, keyFile, rootUser, "", WriteImageCommand(RemoteDevice))

	u.logger.Infof("writing %s to %s on %s", imagePath, RemoteDevice, instance.ID)
	if err := u.streamer.Stream(imagePath, write); err != nil {
		return fmt.Errorf("writing image to %s: %w", RemoteDevice, err)
	}

	if _, err := u.executor.Execute(u.command(instance, keyFile, rootUser, "", "sync")); err != nil {
		return fmt.Errorf("flushing %s: %w", RemoteDevice, err)
	}

	return nil
}

// discardSnapshot deletes a snapshot that will never be handed to the caller
func (u *ImageUploader) discardSnapshot(snapshot resources.Snapshot) {
	u.logger.Warnf("deleting unfinished snapshot %s", snapshot.ID)
	if err := u.ds.SnapshotDriver().Delete(snapshot); err != nil {
		u.logger.Warnf("failed to delete snapshot %s: %s", snapshot.ID, err)
	}
}

// discardVolume detaches and deletes the scratch volume. Failures are logged
// since the snapshot, if any, no longer depends on it.
func (u *ImageUploader) discardVolume(volume resources.Volume, attached bool) {
	volumeDriver := u.ds.VolumeDriver()

	if attached {
		if err := volumeDriver.Detach(volume); err != nil && !driver.IsNotFoundError(err) {
			u.logger.Warnf("failed to detach volume %s: %s", volume.ID, err)
		}

		_, err := waitForVolume(u.logger, volumeDriver, volume, resources.VolumeStateAvailable, u.config.Timings.VolumeDetached, func(v resources.Volume) bool {
			return v.State == resources.VolumeStateAvailable
		})
		if err != nil {
			u.logger.Warnf("volume %s did not detach, deleting anyway: %s", volume.ID, err)
		}
	}

	if err := volumeDriver.Delete(volume); err != nil && !driver.IsNotFoundError(err) {
		u.logger.Warnf("failed to delete volume %s: %s", volume.ID, err)
		return
	}
	u.logger.Infof("deleted volume %s", volume.ID)
}

func (u *ImageUploader) command(instance resources.Instance, keyFile *ephemeral.KeyFile, user string, prefix string, command string) resources.RemoteCommand {
	return resources.RemoteCommand{
		Host:    instance.Address(),
		KeyPath: keyFile.Path(),
		User:    user,
		Prefix:  prefix,
		Command: command,
	}
}
