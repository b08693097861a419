package driverset

import (
	"ebs-image-builder/config"
	"ebs-image-builder/driver"
	"ebs-image-builder/resources"

	"github.com/chainguard-dev/clog"
)

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// RegionDriverSet bundles every driver needed to build images in one region.
// Orchestrators receive it explicitly instead of reaching for a shared client.
//
//counterfeiter:generate . RegionDriverSet
type RegionDriverSet interface {
	SecurityGroupDriver() resources.SecurityGroupDriver
	KeyPairDriver() resources.KeyPairDriver
	InstanceDriver() resources.InstanceDriver
	VolumeDriver() resources.VolumeDriver
	SnapshotDriver() resources.SnapshotDriver
	AmiDriver() resources.AmiDriver
	TagDriver() resources.TagDriver
}

type regionDriverSet struct {
	securityGroupDriver *driver.SDKSecurityGroupDriver
	keyPairDriver       *driver.SDKKeyPairDriver
	instanceDriver      *driver.SDKInstanceDriver
	volumeDriver        *driver.SDKVolumeDriver
	snapshotDriver      *driver.SDKSnapshotDriver
	amiDriver           *driver.SDKAmiDriver
	tagDriver           *driver.SDKTagDriver
}

func NewRegionDriverSet(logger *clog.Logger, creds config.Credentials) RegionDriverSet {
	logger = logger.With("region", creds.Region)
	return &regionDriverSet{
		securityGroupDriver: driver.NewSecurityGroupDriver(logger, creds),
		keyPairDriver:       driver.NewKeyPairDriver(logger, creds),
		instanceDriver:      driver.NewInstanceDriver(logger, creds),
		volumeDriver:        driver.NewVolumeDriver(logger, creds),
		snapshotDriver:      driver.NewSnapshotDriver(logger, creds),
		amiDriver:           driver.NewAmiDriver(logger, creds),
		tagDriver:           driver.NewTagDriver(logger, creds),
	}
}

func (s *regionDriverSet) SecurityGroupDriver() resources.SecurityGroupDriver {
	return s.securityGroupDriver
}

func (s *regionDriverSet) KeyPairDriver() resources.KeyPairDriver {
	return s.keyPairDriver
}

func (s *regionDriverSet) InstanceDriver() resources.InstanceDriver {
	return s.instanceDriver
}

func (s *regionDriverSet) VolumeDriver() resources.VolumeDriver {
	return s.volumeDriver
}

func (s *regionDriverSet) SnapshotDriver() resources.SnapshotDriver {
	return s.snapshotDriver
}

func (s *regionDriverSet) AmiDriver() resources.AmiDriver {
	return s.amiDriver
}

func (s *regionDriverSet) TagDriver() resources.TagDriver {
	return s.tagDriver
}
