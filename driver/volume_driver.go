package driver

import (
	"errors"
	"fmt"

	"ebs-image-builder/config"
	"ebs-image-builder/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/chainguard-dev/clog"
)

var _ resources.VolumeDriver = &SDKVolumeDriver{}

// SDKVolumeDriver manages the EBS volume a disk image is written to
type SDKVolumeDriver struct {
	ec2Client *ec2.EC2
	logger    *clog.Logger
}

func NewVolumeDriver(logger *clog.Logger, creds config.Credentials) *SDKVolumeDriver {
	logger = logger.With("driver", "SDKVolumeDriver")
	return &SDKVolumeDriver{ec2Client: newEC2Client(logger, creds), logger: logger}
}

func (d *SDKVolumeDriver) Create(driverConfig resources.VolumeDriverConfig) (resources.Volume, error) {
	d.logger.Infof("creating %d GiB volume in %s", driverConfig.SizeGB, driverConfig.AvailabilityZone)
	reqOutput, err := d.ec2Client.CreateVolume(&ec2.CreateVolumeInput{
		AvailabilityZone:  aws.String(driverConfig.AvailabilityZone),
		Size:              aws.Int64(driverConfig.SizeGB),
		TagSpecifications: tagSpecifications(ec2.ResourceTypeVolume, driverConfig.Tags),
	})
	if err != nil {
		return resources.Volume{}, fmt.Errorf("creating volume: %w", err)
	}

	if reqOutput.VolumeId == nil {
		return resources.Volume{}, errors.New("volume id nil")
	}

	volume := toVolume(reqOutput)
	d.logger.Infof("created volume %s", volume.ID)
	return volume, nil
}

func (d *SDKVolumeDriver) Describe(volume resources.Volume) (resources.Volume, error) {
	reqOutput, err := d.ec2Client.DescribeVolumes(&ec2.DescribeVolumesInput{
		VolumeIds: []*string{aws.String(volume.ID)},
	})
	if err != nil {
		return resources.Volume{}, fmt.Errorf("describing volume %s: %w", volume.ID, err)
	}

	if len(reqOutput.Volumes) == 0 {
		return resources.Volume{}, fmt.Errorf("volume %s not found", volume.ID)
	}

	return toVolume(reqOutput.Volumes[0]), nil
}

func (d *SDKVolumeDriver) Attach(attachment resources.VolumeAttachment) error {
	d.logger.Infof("attaching volume %s to instance %s at %s", attachment.VolumeID, attachment.InstanceID, attachment.Device)
	_, err := d.ec2Client.AttachVolume(&ec2.AttachVolumeInput{
		VolumeId:   aws.String(attachment.VolumeID),
		InstanceId: aws.String(attachment.InstanceID),
		Device:     aws.String(attachment.Device),
	})
	if err != nil {
		return fmt.Errorf("attaching volume %s to instance %s: %w", attachment.VolumeID, attachment.InstanceID, err)
	}

	return nil
}

func (d *SDKVolumeDriver) Detach(volume resources.Volume) error {
	d.logger.Infof("detaching volume %s", volume.ID)
	_, err := d.ec2Client.DetachVolume(&ec2.DetachVolumeInput{
		VolumeId: aws.String(volume.ID),
	})
	if err != nil {
		return fmt.Errorf("detaching volume %s: %w", volume.ID, err)
	}

	return nil
}

func (d *SDKVolumeDriver) Delete(volume resources.Volume) error {
	d.logger.Infof("deleting volume %s", volume.ID)
	_, err := d.ec2Client.DeleteVolume(&ec2.DeleteVolumeInput{
		VolumeId: aws.String(volume.ID),
	})
	if err != nil {
		return fmt.Errorf("deleting volume %s: %w", volume.ID, err)
	}

	return nil
}

func toVolume(v *ec2.Volume) resources.Volume {
	volume := resources.Volume{
		ID:               aws.StringValue(v.VolumeId),
		State:            aws.StringValue(v.State),
		AvailabilityZone: aws.StringValue(v.AvailabilityZone),
		SizeGB:           aws.Int64Value(v.Size),
		AttachmentState:  resources.VolumeAttachmentDetached,
	}

	if len(v.Attachments) > 0 {
		volume.AttachmentState = aws.StringValue(v.Attachments[0].State)
	}

	return volume
}
