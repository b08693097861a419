package resources

// Volume states reported by EC2
const (
	VolumeStateCreating  = "creating"
	VolumeStateAvailable = "available"
	VolumeStateInUse     = "in-use"
	VolumeStateError     = "error"

	VolumeAttachmentAttached = "attached"
	VolumeAttachmentDetached = "detached"
)

//counterfeiter:generate . VolumeDriver
type VolumeDriver interface {
	Create(VolumeDriverConfig) (Volume, error)
	Describe(Volume) (Volume, error)
	Attach(VolumeAttachment) error
	Detach(Volume) error
	Delete(Volume) error
}

type Volume struct {
	ID               string
	State            string
	AttachmentState  string
	AvailabilityZone string
	SizeGB           int64
}

type VolumeDriverConfig struct {
	SizeGB           int64
	AvailabilityZone string
	Tags             map[string]string
}

// VolumeAttachment names the device under which the provider exposes VolumeID on InstanceID
type VolumeAttachment struct {
	VolumeID   string
	InstanceID string
	Device     string
}
