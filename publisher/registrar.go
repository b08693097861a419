package publisher

import (
	"fmt"
	"time"

	"ebs-image-builder/config"
	"ebs-image-builder/driverset"
	"ebs-image-builder/resources"

	"github.com/chainguard-dev/clog"
	uuid "github.com/satori/go.uuid"
)

// Registrar turns EBS snapshots into bootable AMIs
type Registrar struct {
	logger *clog.Logger
	ds     driverset.RegionDriverSet
	config Config
}

func NewRegistrar(logger *clog.Logger, ds driverset.RegionDriverSet, c Config) *Registrar {
	return &Registrar{
		logger: logger.With("publisher", "Registrar"),
		ds:     ds,
		config: c,
	}
}

// RegisterSnapshot registers snapshotID as the root device of a new AMI. An
// empty arch uses the configured architecture. withEphemeralMap adds the two
// instance store devices an S3 backed image would have.
func (r *Registrar) RegisterSnapshot(snapshotID string, arch string, withEphemeralMap bool) (resources.Ami, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		r.logger.Infof("completed RegisterSnapshot() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	if snapshotID == "" {
		return resources.Ami{}, fmt.Errorf("registering image: snapshot id must be specified")
	}

	properties := r.amiProperties(snapshotID, arch, withEphemeralMap)
	r.logger.Infof("registering %s image %q from snapshot %s", properties.VirtualizationType, properties.Name, snapshotID)

	amiDriver := r.ds.AmiDriver()
	ami, err := amiDriver.Register(resources.AmiDriverConfig{
		SnapshotID:    snapshotID,
		AmiProperties: properties,
	})
	if err != nil {
		return resources.Ami{}, fmt.Errorf("registering image from snapshot %s: %w", snapshotID, err)
	}

	visible, err := waitForImageVisible(r.logger, amiDriver, ami, r.config.Timings.ImageVisible)
	if err != nil {
		r.logger.Warnf("image %s is not visible yet, tagging anyway: %s", ami.ID, err)
	} else {
		ami = visible
	}

	if err := r.ds.TagDriver().Tag(ami.ID, properties.Tags); err != nil {
		r.logger.Warnf("failed to tag image %s: %s", ami.ID, err)
	}

	r.logger.Infof("registered image %s", ami.ID)
	return ami, nil
}

func (r *Registrar) amiProperties(snapshotID string, arch string, withEphemeralMap bool) resources.AmiProperties {
	c := r.config.AmiConfiguration
	if arch == "" {
		arch = c.Architecture
	}

	properties := resources.AmiProperties{
		Name:               c.Name,
		Description:        c.Description,
		Architecture:       arch,
		VirtualizationType: c.VirtualizationType,
		EphemeralMap:       withEphemeralMap,
		Tags:               r.config.imageTags(),
	}

	if properties.Name == "" {
		properties.Name = fmt.Sprintf("%s AMI - %s - uuid-%s", config.DefaultResourceTag, snapshotID, uuid.NewV4().String())
	}
	if properties.Description == "" {
		properties.Description = fmt.Sprintf("Created directly from volume snapshot %s", snapshotID)
	}

	if properties.VirtualizationType == config.ParavirtualVirtualization {
		properties.KernelID = c.KernelID
		if properties.KernelID == "" {
			// an empty kernel makes the driver look up the newest pv-grub image
			properties.KernelID, _ = config.PVGrubKernel(r.config.RegionName, arch)
		}
	}

	return properties
}
