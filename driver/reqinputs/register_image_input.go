package reqinputs

import (
	"ebs-image-builder/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

const (
	firstDeviceNameHVMAmi = "/dev/xvda"
	firstDeviceNamePVAmi  = "/dev/sda"
)

var ephemeralDevices = []struct {
	deviceName  string
	virtualName string
}{
	{deviceName: "/dev/sdb", virtualName: "ephemeral0"},
	{deviceName: "/dev/sdc", virtualName: "ephemeral1"},
}

// NewHVMAmiRequestInput builds the required input to register an HVM AMI
func NewHVMAmiRequestInput(props resources.AmiProperties, snapshotID string) *ec2.RegisterImageInput {
	return &ec2.RegisterImageInput{
		SriovNetSupport:     aws.String("simple"),
		Architecture:        aws.String(architecture(props)),
		Description:         aws.String(props.Description),
		VirtualizationType:  aws.String(resources.HvmAmiVirtualization),
		Name:                aws.String(props.Name),
		RootDeviceName:      aws.String(firstDeviceNameHVMAmi),
		EnaSupport:          aws.Bool(true),
		BlockDeviceMappings: blockDeviceMappings(firstDeviceNameHVMAmi, snapshotID, props.EphemeralMap),
	}
}

// NewPVAmiRequestInput builds the required input to register a paravirtual AMI
// booting through the pv-grub kernel in props.KernelID
func NewPVAmiRequestInput(props resources.AmiProperties, snapshotID string) *ec2.RegisterImageInput {
	return &ec2.RegisterImageInput{
		Architecture:        aws.String(architecture(props)),
		Description:         aws.String(props.Description),
		VirtualizationType:  aws.String(resources.ParavirtualAmiVirtualization),
		Name:                aws.String(props.Name),
		KernelId:            aws.String(props.KernelID),
		RootDeviceName:      aws.String(firstDeviceNamePVAmi),
		BlockDeviceMappings: blockDeviceMappings(firstDeviceNamePVAmi, snapshotID, props.EphemeralMap),
	}
}

func architecture(props resources.AmiProperties) string {
	if props.Architecture == "" {
		return resources.AmiArchitectureX86_64
	}
	return props.Architecture
}

func blockDeviceMappings(rootDevice string, snapshotID string, ephemeralMap bool) []*ec2.BlockDeviceMapping {
	mappings := []*ec2.BlockDeviceMapping{
		{
			DeviceName: aws.String(rootDevice),
			Ebs: &ec2.EbsBlockDevice{
				DeleteOnTermination: aws.Bool(true),
				SnapshotId:          aws.String(snapshotID),
			},
		},
	}

	if !ephemeralMap {
		return mappings
	}

	for _, e := range ephemeralDevices {
		mappings = append(mappings, &ec2.BlockDeviceMapping{
			DeviceName:  aws.String(e.deviceName),
			VirtualName: aws.String(e.virtualName),
		})
	}

	return mappings
}
