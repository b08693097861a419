package resources

// Instance states reported by EC2
const (
	InstanceStatePending      = "pending"
	InstanceStateRunning      = "running"
	InstanceStateStopping     = "stopping"
	InstanceStateStopped      = "stopped"
	InstanceStateShuttingDown = "shutting-down"
	InstanceStateTerminated   = "terminated"
)

//counterfeiter:generate . InstanceDriver
type InstanceDriver interface {
	Create(InstanceDriverConfig) (Instance, error)
	Describe(Instance) (Instance, error)
	Terminate(Instance) error
}

type Instance struct {
	ID               string
	State            string
	PublicDNSName    string
	PublicIP         string
	AvailabilityZone string
}

// Address returns the host name used to reach the instance, preferring the public DNS name
func (i Instance) Address() string {
	if i.PublicDNSName != "" {
		return i.PublicDNSName
	}
	return i.PublicIP
}

type InstanceDriverConfig struct {
	ImageID          string
	InstanceType     string
	KeyName          string
	SecurityGroupID  string
	UserData         []byte
	RootDeviceName   string
	RootVolumeSizeGB int64
	Tags             map[string]string
}
