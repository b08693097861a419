package driver

import (
	"errors"
	"fmt"
	"time"

	"ebs-image-builder/config"
	"ebs-image-builder/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/chainguard-dev/clog"
)

var _ resources.SecurityGroupDriver = &SDKSecurityGroupDriver{}

const anyAddress = "0.0.0.0/0"

// SDKSecurityGroupDriver manages temporary security groups which open TCP ports to any address
type SDKSecurityGroupDriver struct {
	ec2Client *ec2.EC2
	logger    *clog.Logger
}

func NewSecurityGroupDriver(logger *clog.Logger, creds config.Credentials) *SDKSecurityGroupDriver {
	logger = logger.With("driver", "SDKSecurityGroupDriver")
	return &SDKSecurityGroupDriver{ec2Client: newEC2Client(logger, creds), logger: logger}
}

// Create makes the group and authorizes ingress on every configured port range.
// The group is deleted again when ingress cannot be authorized.
func (d *SDKSecurityGroupDriver) Create(driverConfig resources.SecurityGroupDriverConfig) (resources.SecurityGroup, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Debugf("completed Create() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	description := driverConfig.Description
	if description == "" {
		description = driverConfig.Name
	}

	d.logger.Infof("creating security group %s", driverConfig.Name)
	reqOutput, err := d.ec2Client.CreateSecurityGroup(&ec2.CreateSecurityGroupInput{
		GroupName:         aws.String(driverConfig.Name),
		Description:       aws.String(description),
		TagSpecifications: tagSpecifications(ec2.ResourceTypeSecurityGroup, driverConfig.Tags),
	})
	if err != nil {
		return resources.SecurityGroup{}, fmt.Errorf("creating security group %s: %w", driverConfig.Name, err)
	}

	if reqOutput.GroupId == nil {
		return resources.SecurityGroup{}, errors.New("security group id nil")
	}

	group := resources.SecurityGroup{ID: *reqOutput.GroupId, Name: driverConfig.Name}

	if len(driverConfig.IngressPorts) == 0 {
		return group, nil
	}

	permissions := make([]*ec2.IpPermission, 0, len(driverConfig.IngressPorts))
	for _, ports := range driverConfig.IngressPorts {
		permissions = append(permissions, &ec2.IpPermission{
			IpProtocol: aws.String("tcp"),
			FromPort:   aws.Int64(ports.From),
			ToPort:     aws.Int64(ports.To),
			IpRanges:   []*ec2.IpRange{{CidrIp: aws.String(anyAddress)}},
		})
	}

	_, err = d.ec2Client.AuthorizeSecurityGroupIngress(&ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:       aws.String(group.ID),
		IpPermissions: permissions,
	})
	if err != nil {
		if deleteErr := d.Delete(group); deleteErr != nil {
			d.logger.Warnf("failed to delete security group %s after ingress error: %s", group.ID, deleteErr)
		}
		return resources.SecurityGroup{}, fmt.Errorf("authorizing ingress on security group %s: %w", group.ID, err)
	}

	d.logger.Infof("created security group %s (%s)", group.ID, group.Name)
	return group, nil
}

// Delete removes the group. A group that no longer exists is not an error.
func (d *SDKSecurityGroupDriver) Delete(group resources.SecurityGroup) error {
	d.logger.Infof("deleting security group %s", group.ID)
	_, err := d.ec2Client.DeleteSecurityGroup(&ec2.DeleteSecurityGroupInput{
		GroupId: aws.String(group.ID),
	})
	if err != nil {
		if IsNotFoundError(err) {
			d.logger.Debugf("security group %s already deleted", group.ID)
			return nil
		}
		return fmt.Errorf("deleting security group %s: %w", group.ID, err)
	}

	return nil
}
