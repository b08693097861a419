package resources

//counterfeiter:generate . SecurityGroupDriver
type SecurityGroupDriver interface {
	Create(SecurityGroupDriverConfig) (SecurityGroup, error)
	Delete(SecurityGroup) error
}

type SecurityGroup struct {
	ID   string
	Name string
}

// PortRange is an inclusive TCP port range opened to any source address
type PortRange struct {
	From int64
	To   int64
}

type SecurityGroupDriverConfig struct {
	Name         string
	Description  string
	IngressPorts []PortRange
	Tags         map[string]string
}
