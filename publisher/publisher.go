package publisher

import (
	"errors"
	"fmt"

	"ebs-image-builder/config"

	uuid "github.com/satori/go.uuid"
)

var (
	// ErrUploadInProgress is returned when an ImageUploader is asked to upload
	// while a previous upload has not finished
	ErrUploadInProgress = errors.New("an upload is already in progress on this uploader")

	// ErrPostcondition marks a resource which reached a state other than the expected one
	ErrPostcondition = errors.New("postcondition violated")
)

// Config is the region scoped configuration shared by every orchestrator
type Config struct {
	RegionName       string
	ResourceTag      string
	UtilityImage     config.UtilityImage
	AmiConfiguration config.AmiConfiguration
	Installer        config.Installer
	Timings          Timings
}

func NewConfig(c config.Config) Config {
	return Config{
		RegionName:       c.Region.Name,
		ResourceTag:      c.ResourceTag,
		UtilityImage:     c.UtilityImage,
		AmiConfiguration: c.AmiConfiguration,
		Installer:        c.Installer,
		Timings:          TimingsFromConfig(c.Timeouts),
	}
}

// InstallerConfig describes one installer run. Zero DiskSizeGB and empty
// InstanceType fall back to the installer defaults of the Config.
type InstallerConfig struct {
	SourceImageID string
	Payload       []byte
	DiskSizeGB    int64
	InstanceType  string
	Name          string
	Description   string
}

func (c Config) resourceTags() map[string]string {
	return map[string]string{"Name": c.ResourceTag}
}

func (c Config) imageTags() map[string]string {
	tags := c.resourceTags()
	for k, v := range c.AmiConfiguration.Tags {
		tags[k] = v
	}
	return tags
}

// ephemeralName returns a unique name for a short lived helper resource
func ephemeralName() string {
	return fmt.Sprintf("ebs-helper-tmp-%x", uuid.NewV4().Bytes()[:8])
}

func postconditionError(resource string, want string, got string) error {
	return fmt.Errorf("%w: %s is %s, expected %s", ErrPostcondition, resource, got, want)
}
