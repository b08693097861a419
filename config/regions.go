package config

const (
	DefaultUtilityUser          = "ec2-user"
	DefaultUtilityCommandPrefix = "sudo"

	// CustomUtilityUser logs in to a utility image that is not one of the region defaults
	CustomUtilityUser = "root"
)

// RegionDefaults lists the public utility image and pv-grub kernels known for a region
type RegionDefaults struct {
	UtilityImageID string
	CommandPrefix  string
	User           string

	// PVGrubKernels maps an architecture to the pv-grub hd0 kernel image (AKI)
	PVGrubKernels map[string]string
}

var regionDefaults = map[string]RegionDefaults{
	"us-east-1": {
		UtilityImageID: "ami-6f640c06",
		PVGrubKernels:  pvgrub("aki-b2aa75db", "aki-b4aa75dd"),
	},
	"us-west-2": {
		UtilityImageID: "ami-67930257",
		PVGrubKernels:  pvgrub("aki-f637bac6", "aki-f837bac8"),
	},
	"us-west-1": {
		UtilityImageID: "ami-634f6126",
		PVGrubKernels:  pvgrub("aki-e97e26ac", "aki-eb7e26ae"),
	},
	"eu-west-1": {
		UtilityImageID: "ami-2d819059",
		PVGrubKernels:  pvgrub("aki-89655dfd", "aki-8b655dff"),
	},
	"ap-southeast-1": {
		UtilityImageID: "ami-f8357baa",
		PVGrubKernels:  pvgrub("aki-f41354a6", "aki-fa1354a8"),
	},
	"ap-southeast-2": {
		UtilityImageID: "ami-f5d340cf",
		PVGrubKernels:  pvgrub("aki-3f990e05", "aki-3d990e07"),
	},
	"ap-northeast-1": {
		UtilityImageID: "ami-51bc3550",
		PVGrubKernels:  pvgrub("aki-3e99283f", "aki-40992841"),
	},
	"sa-east-1": {
		UtilityImageID: "ami-d2e84dcf",
		PVGrubKernels:  pvgrub("aki-ce8f51d3", "aki-c88f51d5"),
	},
}

func pvgrub(i386, x86_64 string) map[string]string {
	return map[string]string{
		ArchitectureI386:   i386,
		ArchitectureX86_64: x86_64,
	}
}

// DefaultsFor returns the defaults of a known region, with the utility login filled in
func DefaultsFor(region string) (RegionDefaults, bool) {
	d, ok := regionDefaults[region]
	if !ok {
		return RegionDefaults{}, false
	}

	d.CommandPrefix = DefaultUtilityCommandPrefix
	d.User = DefaultUtilityUser
	return d, true
}

// PVGrubKernel returns the pv-grub kernel for region and architecture.
func PVGrubKernel(region, architecture string) (string, bool) {
	d, ok := regionDefaults[region]
	if !ok {
		return "", false
	}

	aki, ok := d.PVGrubKernels[architecture]
	return aki, ok
}
