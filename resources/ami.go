package resources

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// AMI creation constants
const (
	AmiArchitectureX86_64 = "x86_64"
	AmiArchitectureI386   = "i386"

	HvmAmiVirtualization         = "hvm"
	ParavirtualAmiVirtualization = "paravirtual"
)

// Image states reported by EC2
const (
	AmiStatePending   = "pending"
	AmiStateAvailable = "available"
	AmiStateFailed    = "failed"
)

// AmiDriver abstracts the API calls required to manage an AMI. Deregister
// also deletes the snapshots backing the image.
//
//counterfeiter:generate . AmiDriver
type AmiDriver interface {
	Register(AmiDriverConfig) (Ami, error)
	CreateFromInstance(AmiDriverConfig) (Ami, error)
	Describe(Ami) (Ami, error)
	Deregister(Ami) error
}

// Ami represents an AMI resource in EC2. Exists is false while a freshly
// registered image is not yet visible to DescribeImages.
type Ami struct {
	ID     string
	Region string
	Name   string
	State  string
	Exists bool
}

// AmiProperties describes what properties the registered AMI should have
type AmiProperties struct {
	Name               string
	Description        string
	Architecture       string
	VirtualizationType string
	KernelID           string
	EphemeralMap       bool
	Tags               map[string]string
}

// AmiDriverConfig registers an AMI from SnapshotID, or captures one from a stopped InstanceID
type AmiDriverConfig struct {
	SnapshotID string
	InstanceID string
	AmiProperties
}
