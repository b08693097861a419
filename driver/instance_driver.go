package driver

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"ebs-image-builder/config"
	"ebs-image-builder/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/chainguard-dev/clog"
)

var _ resources.InstanceDriver = &SDKInstanceDriver{}

const defaultRootDeviceName = "/dev/sda"

// SDKInstanceDriver launches, inspects and terminates single EC2 instances
type SDKInstanceDriver struct {
	ec2Client *ec2.EC2
	logger    *clog.Logger
}

func NewInstanceDriver(logger *clog.Logger, creds config.Credentials) *SDKInstanceDriver {
	logger = logger.With("driver", "SDKInstanceDriver")
	return &SDKInstanceDriver{ec2Client: newEC2Client(logger, creds), logger: logger}
}

// Create launches one instance. It returns as soon as EC2 accepted the request;
// callers wait for the running state themselves.
func (d *SDKInstanceDriver) Create(driverConfig resources.InstanceDriverConfig) (resources.Instance, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Debugf("completed Create() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	reqInput := &ec2.RunInstancesInput{
		ImageId:           aws.String(driverConfig.ImageID),
		InstanceType:      aws.String(driverConfig.InstanceType),
		MinCount:          aws.Int64(1),
		MaxCount:          aws.Int64(1),
		TagSpecifications: tagSpecifications(ec2.ResourceTypeInstance, driverConfig.Tags),
	}

	if driverConfig.KeyName != "" {
		reqInput.KeyName = aws.String(driverConfig.KeyName)
	}

	if driverConfig.SecurityGroupID != "" {
		reqInput.SecurityGroupIds = []*string{aws.String(driverConfig.SecurityGroupID)}
	}

	if len(driverConfig.UserData) > 0 {
		reqInput.UserData = aws.String(base64.StdEncoding.EncodeToString(driverConfig.UserData))
	}

	if driverConfig.RootVolumeSizeGB > 0 {
		rootDevice := driverConfig.RootDeviceName
		if rootDevice == "" {
			rootDevice = defaultRootDeviceName
		}
		reqInput.BlockDeviceMappings = []*ec2.BlockDeviceMapping{
			{
				DeviceName: aws.String(rootDevice),
				Ebs: &ec2.EbsBlockDevice{
					VolumeSize:          aws.Int64(driverConfig.RootVolumeSizeGB),
					DeleteOnTermination: aws.Bool(true),
				},
			},
		}
	}

	d.logger.Infof("launching %s instance from image %s", driverConfig.InstanceType, driverConfig.ImageID)
	reservation, err := d.ec2Client.RunInstances(reqInput)
	if err != nil {
		return resources.Instance{}, fmt.Errorf("launching instance from image %s: %w", driverConfig.ImageID, err)
	}

	if len(reservation.Instances) == 0 || reservation.Instances[0].InstanceId == nil {
		return resources.Instance{}, errors.New("instance id nil")
	}

	instance := toInstance(reservation.Instances[0])
	d.logger.Infof("launched instance %s", instance.ID)
	return instance, nil
}

func (d *SDKInstanceDriver) Describe(instance resources.Instance) (resources.Instance, error) {
	reqOutput, err := d.ec2Client.DescribeInstances(&ec2.DescribeInstancesInput{
		InstanceIds: []*string{aws.String(instance.ID)},
	})
	if err != nil {
		return resources.Instance{}, fmt.Errorf("describing instance %s: %w", instance.ID, err)
	}

	for _, reservation := range reqOutput.Reservations {
		for _, i := range reservation.Instances {
			if aws.StringValue(i.InstanceId) == instance.ID {
				return toInstance(i), nil
			}
		}
	}

	return resources.Instance{}, fmt.Errorf("instance %s not found", instance.ID)
}

func (d *SDKInstanceDriver) Terminate(instance resources.Instance) error {
	d.logger.Infof("terminating instance %s", instance.ID)
	_, err := d.ec2Client.TerminateInstances(&ec2.TerminateInstancesInput{
		InstanceIds: []*string{aws.String(instance.ID)},
	})
	if err != nil {
		return fmt.Errorf("terminating instance %s: %w", instance.ID, err)
	}

	return nil
}

func toInstance(i *ec2.Instance) resources.Instance {
	instance := resources.Instance{
		ID:            aws.StringValue(i.InstanceId),
		PublicDNSName: aws.StringValue(i.PublicDnsName),
		PublicIP:      aws.StringValue(i.PublicIpAddress),
	}

	if i.State != nil {
		instance.State = aws.StringValue(i.State.Name)
	}

	if i.Placement != nil {
		instance.AvailabilityZone = aws.StringValue(i.Placement.AvailabilityZone)
	}

	return instance
}
