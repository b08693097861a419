package driver

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"ebs-image-builder/config"
	"ebs-image-builder/driver/reqinputs"
	"ebs-image-builder/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/chainguard-dev/clog"
)

var _ resources.AmiDriver = &SDKAmiDriver{}

const amazonOwner = "amazon"

// SDKAmiDriver registers AMIs from snapshots and captures them from stopped instances
type SDKAmiDriver struct {
	ec2Client *ec2.EC2
	region    string
	logger    *clog.Logger
}

func NewAmiDriver(logger *clog.Logger, creds config.Credentials) *SDKAmiDriver {
	logger = logger.With("driver", "SDKAmiDriver")
	return &SDKAmiDriver{ec2Client: newEC2Client(logger, creds), region: creds.Region, logger: logger}
}

// Register creates an AMI from an existing snapshot. Paravirtual images
// without a kernel boot through the newest Amazon pv-grub kernel.
func (d *SDKAmiDriver) Register(driverConfig resources.AmiDriverConfig) (resources.Ami, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Debugf("completed Register() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	d.logger.Infof("registering AMI %q from snapshot %s", driverConfig.Name, driverConfig.SnapshotID)

	var reqInput *ec2.RegisterImageInput
	switch driverConfig.VirtualizationType {
	case resources.HvmAmiVirtualization:
		reqInput = reqinputs.NewHVMAmiRequestInput(driverConfig.AmiProperties, driverConfig.SnapshotID)
	default:
		props := driverConfig.AmiProperties
		if props.KernelID == "" {
			kernelID, err := d.findLatestKernelImage(props.Architecture)
			if err != nil {
				return resources.Ami{}, err
			}
			props.KernelID = kernelID
		}
		reqInput = reqinputs.NewPVAmiRequestInput(props, driverConfig.SnapshotID)
	}

	reqOutput, err := d.ec2Client.RegisterImage(reqInput)
	if err != nil {
		return resources.Ami{}, fmt.Errorf("registering AMI: %w", err)
	}

	if reqOutput.ImageId == nil {
		return resources.Ami{}, errors.New("AMI id nil")
	}

	d.logger.Infof("registered AMI %s", *reqOutput.ImageId)
	return resources.Ami{
		ID:     *reqOutput.ImageId,
		Region: d.region,
		Name:   driverConfig.Name,
		State:  resources.AmiStatePending,
	}, nil
}

// CreateFromInstance captures the root volume of a stopped instance as a new AMI
func (d *SDKAmiDriver) CreateFromInstance(driverConfig resources.AmiDriverConfig) (resources.Ami, error) {
	d.logger.Infof("creating AMI %q from instance %s", driverConfig.Name, driverConfig.InstanceID)

	reqOutput, err := d.ec2Client.CreateImage(&ec2.CreateImageInput{
		InstanceId:  aws.String(driverConfig.InstanceID),
		Name:        aws.String(driverConfig.Name),
		Description: aws.String(driverConfig.Description),
	})
	if err != nil {
		return resources.Ami{}, fmt.Errorf("creating AMI from instance %s: %w", driverConfig.InstanceID, err)
	}

	if reqOutput.ImageId == nil {
		return resources.Ami{}, errors.New("AMI id nil")
	}

	return resources.Ami{
		ID:     *reqOutput.ImageId,
		Region: d.region,
		Name:   driverConfig.Name,
		State:  resources.AmiStatePending,
	}, nil
}

// Describe returns the current state of ami. An image EC2 does not know about
// yet is reported with Exists set to false rather than as an error.
func (d *SDKAmiDriver) Describe(ami resources.Ami) (resources.Ami, error) {
	reqOutput, err := d.ec2Client.DescribeImages(&ec2.DescribeImagesInput{
		ImageIds: []*string{aws.String(ami.ID)},
	})
	if err != nil {
		if IsNotFoundError(err) {
			ami.Exists = false
			return ami, nil
		}
		return resources.Ami{}, fmt.Errorf("describing AMI %s: %w", ami.ID, err)
	}

	if len(reqOutput.Images) == 0 {
		ami.Exists = false
		return ami, nil
	}

	image := reqOutput.Images[0]
	ami.Exists = true
	ami.State = aws.StringValue(image.State)
	ami.Name = aws.StringValue(image.Name)
	if ami.Region == "" {
		ami.Region = d.region
	}
	return ami, nil
}

// Deregister removes ami and then deletes the EBS snapshots that backed it.
// Snapshot failures are collected so every snapshot gets a delete attempt.
func (d *SDKAmiDriver) Deregister(ami resources.Ami) error {
	d.logger.Infof("deregistering AMI %s", ami.ID)

	var snapshotIDs []string
	reqOutput, err := d.ec2Client.DescribeImages(&ec2.DescribeImagesInput{
		ImageIds: []*string{aws.String(ami.ID)},
	})
	if err != nil && !IsNotFoundError(err) {
		return fmt.Errorf("describing AMI %s: %w", ami.ID, err)
	}
	if err == nil {
		for _, image := range reqOutput.Images {
			for _, mapping := range image.BlockDeviceMappings {
				if mapping.Ebs != nil && mapping.Ebs.SnapshotId != nil {
					snapshotIDs = append(snapshotIDs, *mapping.Ebs.SnapshotId)
				}
			}
		}
	}

	_, err = d.ec2Client.DeregisterImage(&ec2.DeregisterImageInput{
		ImageId: aws.String(ami.ID),
	})
	if err != nil && !IsNotFoundError(err) {
		return fmt.Errorf("deregistering AMI %s: %w", ami.ID, err)
	}

	var errs []error
	for _, snapshotID := range snapshotIDs {
		d.logger.Infof("deleting snapshot %s of AMI %s", snapshotID, ami.ID)
		_, err := d.ec2Client.DeleteSnapshot(&ec2.DeleteSnapshotInput{
			SnapshotId: aws.String(snapshotID),
		})
		if err != nil && !IsNotFoundError(err) {
			errs = append(errs, fmt.Errorf("deleting snapshot %s: %w", snapshotID, err))
		}
	}

	return errors.Join(errs...)
}

func (d *SDKAmiDriver) findLatestKernelImage(architecture string) (string, error) {
	if architecture == "" {
		architecture = resources.AmiArchitectureX86_64
	}

	describeImagesOutput, err := d.ec2Client.DescribeImages(&ec2.DescribeImagesInput{
		Owners: []*string{aws.String(amazonOwner)},
		Filters: []*ec2.Filter{
			{
				Name:   aws.String("name"),
				Values: []*string{aws.String(fmt.Sprintf("pv-grub-hd0_*-%s.gz", architecture))},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("finding AKI for PV AMI: %w", err)
	}

	if len(describeImagesOutput.Images) == 0 {
		return "", errors.New("empty AKI list")
	}

	return newestImage(describeImagesOutput.Images), nil
}

// newestImage returns the ID of the most recently created image
func newestImage(images []*ec2.Image) string {
	sorted := make([]*ec2.Image, len(images))
	copy(sorted, images)

	sort.SliceStable(sorted, func(i, j int) bool {
		iCreationTime, _ := time.Parse(time.RFC3339Nano, aws.StringValue(sorted[i].CreationDate))
		jCreationTime, _ := time.Parse(time.RFC3339Nano, aws.StringValue(sorted[j].CreationDate))
		return iCreationTime.After(jCreationTime)
	})

	return aws.StringValue(sorted[0].ImageId)
}
