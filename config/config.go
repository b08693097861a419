package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
)

const (
	HardwareAssistedVirtualization = "hvm"
	ParavirtualVirtualization      = "paravirtual"

	ArchitectureX86_64 = "x86_64"
	ArchitectureI386   = "i386"
)

const (
	DefaultResourceTag         = "ebs-image-builder"
	DefaultUtilityInstanceType = "m1.small"
	DefaultInstallerDiskSizeGB = 10
)

// Convention:
// 1. required
// 2. optional, defaulted
// 3. optional
type Region struct {
	Name        string      `json:"name"`
	Credentials Credentials `json:"credentials"`
}

type Credentials struct {
	AccessKey    string `json:"access_key"`
	SecretKey    string `json:"secret_key"`
	SessionToken string `json:"session_token"`
	RoleArn      string `json:"role_arn"`
	Region       string `json:"-"`
}

// UtilityImage is the helper machine used to write disk images onto volumes.
// Empty fields are taken from the region defaults.
type UtilityImage struct {
	ImageID       string `json:"image_id"`
	CommandPrefix string `json:"command_prefix"`
	User          string `json:"user"`
	InstanceType  string `json:"instance_type"`
}

type AmiConfiguration struct {
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Architecture        string            `json:"architecture"`
	VirtualizationType  string            `json:"virtualization_type"`
	KernelID            string            `json:"kernel_id"`
	DisableEphemeralMap bool              `json:"disable_ephemeral_map"`
	Tags                map[string]string `json:"tags,omitempty"`
}

type Installer struct {
	InstanceType string `json:"instance_type"`
	DiskSizeGB   int64  `json:"disk_size_gb"`
	MaxParallel  int    `json:"max_parallel"`
}

// Timeouts overrides the built-in waits. Zero values keep the defaults.
type Timeouts struct {
	AttachSettleSeconds       *int `json:"attach_settle_seconds,omitempty"`
	InstanceRunningSeconds    int  `json:"instance_running_seconds,omitempty"`
	SSHReadySeconds           int  `json:"ssh_ready_seconds,omitempty"`
	VolumeAvailableSeconds    int  `json:"volume_available_seconds,omitempty"`
	VolumeAttachedSeconds     int  `json:"volume_attached_seconds,omitempty"`
	SnapshotCompletedSeconds  int  `json:"snapshot_completed_seconds,omitempty"`
	VolumeDetachedSeconds     int  `json:"volume_detached_seconds,omitempty"`
	InstanceTerminatedSeconds int  `json:"instance_terminated_seconds,omitempty"`
	InstallerStoppedSeconds   int  `json:"installer_stopped_seconds,omitempty"`
	ImageAvailableSeconds     int  `json:"image_available_seconds,omitempty"`
}

type Config struct {
	Region           Region           `json:"region"`
	ResourceTag      string           `json:"resource_tag"`
	UtilityImage     UtilityImage     `json:"utility_image"`
	AmiConfiguration AmiConfiguration `json:"ami_configuration"`
	Installer        Installer        `json:"installer"`
	Timeouts         Timeouts         `json:"timeouts"`
}

func NewFromReader(r io.Reader) (Config, error) {
	c := Config{}

	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	err = json.Unmarshal(b, &c)
	if err != nil {
		return Config{}, err
	}

	c.Region.Credentials.Region = c.Region.Name

	if c.ResourceTag == "" {
		c.ResourceTag = DefaultResourceTag
	}

	if c.AmiConfiguration.Architecture == "" {
		c.AmiConfiguration.Architecture = ArchitectureX86_64
	}

	if c.AmiConfiguration.VirtualizationType == "" {
		c.AmiConfiguration.VirtualizationType = ParavirtualVirtualization
	}

	if c.Installer.InstanceType == "" {
		c.Installer.InstanceType = DefaultUtilityInstanceType
	}

	if c.Installer.DiskSizeGB == 0 {
		c.Installer.DiskSizeGB = DefaultInstallerDiskSizeGB
	}

	defaults, known := DefaultsFor(c.Region.Name)
	if c.UtilityImage.ImageID == "" && known {
		c.UtilityImage.ImageID = defaults.UtilityImageID
		if c.UtilityImage.CommandPrefix == "" {
			c.UtilityImage.CommandPrefix = defaults.CommandPrefix
		}
		if c.UtilityImage.User == "" {
			c.UtilityImage.User = defaults.User
		}
	}

	if c.UtilityImage.User == "" {
		c.UtilityImage.User = CustomUtilityUser
	}

	if c.UtilityImage.InstanceType == "" {
		c.UtilityImage.InstanceType = DefaultUtilityInstanceType
	}

	err = c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (config *Config) validate() error {
	if config.Region.Name == "" {
		return errors.New("name must be specified for region")
	}

	if config.UtilityImage.ImageID == "" {
		return fmt.Errorf("image_id must be specified for utility_image: no default utility image for region %s", config.Region.Name)
	}

	validArchitecture := map[string]bool{
		ArchitectureX86_64: true,
		ArchitectureI386:   true,
	}
	if !validArchitecture[config.AmiConfiguration.Architecture] {
		return errors.New("architecture must be one of: ['x86_64', 'i386']")
	}

	validVirtualization := map[string]bool{
		ParavirtualVirtualization:      true,
		HardwareAssistedVirtualization: true,
	}
	if !validVirtualization[config.AmiConfiguration.VirtualizationType] {
		return errors.New("virtualization_type must be one of: ['paravirtual', 'hvm']")
	}

	if config.Installer.DiskSizeGB < 0 {
		return errors.New("disk_size_gb must be positive for installer")
	}

	if config.Installer.MaxParallel < 0 {
		return errors.New("max_parallel must not be negative for installer")
	}

	if config.Timeouts.AttachSettleSeconds != nil && *config.Timeouts.AttachSettleSeconds < 0 {
		return errors.New("attach_settle_seconds must not be negative")
	}

	return nil
}

// GetAwsConfig uses static keys when both are present, optionally assuming
// RoleArn with them. Otherwise the SDK default credential chain applies.
func (configCredentials *Credentials) GetAwsConfig() *aws.Config {
	awsConfig := aws.NewConfig().WithRegion(configCredentials.Region)

	if configCredentials.AccessKey != "" && configCredentials.SecretKey != "" {
		awsCredentials := credentials.NewStaticCredentialsFromCreds(
			credentials.Value{
				AccessKeyID:     configCredentials.AccessKey,
				SecretAccessKey: configCredentials.SecretKey,
				SessionToken:    configCredentials.SessionToken,
			},
		)

		if configCredentials.RoleArn != "" {
			staticConfig := aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
			awsCredentials = stscreds.NewCredentials(
				session.Must(session.NewSession(staticConfig)),
				configCredentials.RoleArn,
			)
		}

		return awsConfig.WithCredentials(awsCredentials)
	}

	if configCredentials.RoleArn != "" {
		return awsConfig.WithCredentials(stscreds.NewCredentials(
			session.Must(session.NewSession(aws.NewConfig().WithRegion(configCredentials.Region))),
			configCredentials.RoleArn,
		))
	}

	return awsConfig
}
