package publisher

import (
	"errors"
	"fmt"
	"time"

	"ebs-image-builder/config"
	"ebs-image-builder/driverset"
	"ebs-image-builder/ephemeral"
	"ebs-image-builder/resources"

	"github.com/chainguard-dev/clog"
	uuid "github.com/satori/go.uuid"
)

// consolePorts are opened next to ssh so that installer runs can be watched over VNC
var consolePorts = resources.PortRange{From: 5900, To: 5950}

// InstallerRunner boots a seed image with an installer payload as user data,
// waits for the installer to power the machine off and captures the result.
// It keeps no state between runs and can be shared by concurrent callers.
type InstallerRunner struct {
	logger *clog.Logger
	ds     driverset.RegionDriverSet
	config Config
}

func NewInstallerRunner(logger *clog.Logger, ds driverset.RegionDriverSet, c Config) *InstallerRunner {
	return &InstallerRunner{
		logger: logger.With("publisher", "InstallerRunner"),
		ds:     ds,
		config: c,
	}
}

func (r *InstallerRunner) RunInstaller(c InstallerConfig) (resources.Ami, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		r.logger.Infof("completed RunInstaller() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	if c.SourceImageID == "" {
		return resources.Ami{}, errors.New("running installer: source image id must be specified")
	}
	c = r.withDefaults(c)

	logger := r.logger.With("image", c.Name)
	set := ephemeral.NewSet(logger, r.ds, r.config.Timings.Teardown)
	defer release(logger, set)

	name := ephemeralName()
	tags := r.config.resourceTags()
	group, err := r.ds.SecurityGroupDriver().Create(resources.SecurityGroupDriverConfig{
		Name:         name,
		Description:  "temporary ssh and console access for " + r.config.ResourceTag,
		IngressPorts: []resources.PortRange{{From: 22, To: 22}, consolePorts},
		Tags:         tags,
	})
	if err != nil {
		return resources.Ami{}, fmt.Errorf("creating security group: %w", err)
	}
	set.TrackSecurityGroup(group)

	// only for operators inspecting a stuck installer
	keyPair, err := r.ds.KeyPairDriver().Create(resources.KeyPairDriverConfig{Name: name, Tags: tags})
	if err != nil {
		return resources.Ami{}, fmt.Errorf("creating key pair: %w", err)
	}

	keyFile, err := ephemeral.WriteKeyFile(keyPair.Name, keyPair.Material)
	set.TrackKeyPair(keyPair, keyFile)
	if err != nil {
		return resources.Ami{}, err
	}
	logger.Debugf("installer key for %s written to %s", keyPair.Name, keyFile.Path())

	instanceDriver := r.ds.InstanceDriver()
	instance, err := instanceDriver.Create(resources.InstanceDriverConfig{
		ImageID:          c.SourceImageID,
		InstanceType:     c.InstanceType,
		KeyName:          keyPair.Name,
		SecurityGroupID:  group.ID,
		UserData:         c.Payload,
		RootVolumeSizeGB: c.DiskSizeGB,
		Tags:             tags,
	})
	if err != nil {
		return resources.Ami{}, fmt.Errorf("launching installer instance from %s: %w", c.SourceImageID, err)
	}
	set.TrackInstance(instance)
	logger.Infof("launched installer instance %s from %s", instance.ID, c.SourceImageID)

	// a quick installer may already have powered off by the first check
	_, err = waitForInstance(logger, instanceDriver, instance, resources.InstanceStateRunning, r.config.Timings.InstanceRunning, releaseOnTimeout(logger, set),
		resources.InstanceStateStopping, resources.InstanceStateStopped)
	if err != nil {
		return resources.Ami{}, fmt.Errorf("waiting for installer instance %s to run: %w", instance.ID, err)
	}

	_, err = waitForInstance(logger, instanceDriver, instance, resources.InstanceStateStopped, r.config.Timings.InstallerStopped, releaseOnTimeout(logger, set))
	if err != nil {
		return resources.Ami{}, fmt.Errorf("waiting for installer on %s to power off: %w", instance.ID, err)
	}

	amiDriver := r.ds.AmiDriver()
	ami, err := amiDriver.CreateFromInstance(resources.AmiDriverConfig{
		InstanceID: instance.ID,
		AmiProperties: resources.AmiProperties{
			Name:        c.Name,
			Description: c.Description,
			Tags:        r.config.imageTags(),
		},
	})
	if err != nil {
		return resources.Ami{}, fmt.Errorf("creating image from instance %s: %w", instance.ID, err)
	}

	if _, err := waitForImageVisible(logger, amiDriver, ami, r.config.Timings.ImageVisible); err != nil {
		logger.Warnf("image %s is not visible yet: %s", ami.ID, err)
	}

	discard := func() {
		logger.Warnf("deregistering unfinished image %s", ami.ID)
		if err := amiDriver.Deregister(ami); err != nil {
			logger.Warnf("failed to deregister image %s: %s", ami.ID, err)
		}
	}
	available, err := waitForImageAvailable(logger, amiDriver, ami, r.config.Timings.ImageAvailable, discard)
	if err != nil {
		discardOnFailure(err, discard)
		return resources.Ami{}, fmt.Errorf("waiting for image %s: %w", ami.ID, err)
	}
	ami = available

	if err := r.ds.TagDriver().Tag(ami.ID, r.config.imageTags()); err != nil {
		logger.Warnf("failed to tag image %s: %s", ami.ID, err)
	}

	logger.Infof("installer produced image %s", ami.ID)
	return ami, nil
}

func (r *InstallerRunner) withDefaults(c InstallerConfig) InstallerConfig {
	if c.DiskSizeGB == 0 {
		c.DiskSizeGB = r.config.Installer.DiskSizeGB
	}
	if c.DiskSizeGB == 0 {
		c.DiskSizeGB = config.DefaultInstallerDiskSizeGB
	}
	if c.InstanceType == "" {
		c.InstanceType = r.config.Installer.InstanceType
	}
	if c.InstanceType == "" {
		c.InstanceType = config.DefaultUtilityInstanceType
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("%s installer - %s - uuid-%s", config.DefaultResourceTag, c.SourceImageID, uuid.NewV4().String())
	}
	if c.Description == "" {
		c.Description = fmt.Sprintf("Installed on top of %s", c.SourceImageID)
	}
	return c
}
