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

var _ resources.SnapshotDriver = &SDKSnapshotDriver{}

// SDKSnapshotDriver snapshots EBS volumes
type SDKSnapshotDriver struct {
	ec2Client *ec2.EC2
	logger    *clog.Logger
}

func NewSnapshotDriver(logger *clog.Logger, creds config.Credentials) *SDKSnapshotDriver {
	logger = logger.With("driver", "SDKSnapshotDriver")
	return &SDKSnapshotDriver{ec2Client: newEC2Client(logger, creds), logger: logger}
}

// Create starts a snapshot of a volume; the snapshot is pending until it completes
func (d *SDKSnapshotDriver) Create(driverConfig resources.SnapshotDriverConfig) (resources.Snapshot, error) {
	d.logger.Infof("creating snapshot from volume %s", driverConfig.VolumeID)
	reqOutput, err := d.ec2Client.CreateSnapshot(&ec2.CreateSnapshotInput{
		VolumeId:          aws.String(driverConfig.VolumeID),
		Description:       aws.String(driverConfig.Description),
		TagSpecifications: tagSpecifications(ec2.ResourceTypeSnapshot, driverConfig.Tags),
	})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("creating snapshot from volume %s: %w", driverConfig.VolumeID, err)
	}

	if reqOutput.SnapshotId == nil {
		return resources.Snapshot{}, errors.New("snapshot id nil")
	}

	d.logger.Infof("created snapshot %s", *reqOutput.SnapshotId)
	return toSnapshot(reqOutput), nil
}

func (d *SDKSnapshotDriver) Describe(snapshot resources.Snapshot) (resources.Snapshot, error) {
	reqOutput, err := d.ec2Client.DescribeSnapshots(&ec2.DescribeSnapshotsInput{
		SnapshotIds: []*string{aws.String(snapshot.ID)},
	})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("describing snapshot %s: %w", snapshot.ID, err)
	}

	if len(reqOutput.Snapshots) == 0 {
		return resources.Snapshot{}, fmt.Errorf("snapshot %s not found", snapshot.ID)
	}

	return toSnapshot(reqOutput.Snapshots[0]), nil
}

// Delete removes the snapshot. A snapshot that no longer exists is not an error.
func (d *SDKSnapshotDriver) Delete(snapshot resources.Snapshot) error {
	d.logger.Infof("deleting snapshot %s", snapshot.ID)
	_, err := d.ec2Client.DeleteSnapshot(&ec2.DeleteSnapshotInput{
		SnapshotId: aws.String(snapshot.ID),
	})
	if err != nil {
		if IsNotFoundError(err) {
			d.logger.Debugf("snapshot %s already deleted", snapshot.ID)
			return nil
		}
		return fmt.Errorf("deleting snapshot %s: %w", snapshot.ID, err)
	}

	return nil
}

func toSnapshot(s *ec2.Snapshot) resources.Snapshot {
	return resources.Snapshot{
		ID:       aws.StringValue(s.SnapshotId),
		State:    aws.StringValue(s.State),
		Progress: aws.StringValue(s.Progress),
	}
}
