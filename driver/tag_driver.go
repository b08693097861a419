package driver

import (
	"fmt"

	"ebs-image-builder/config"
	"ebs-image-builder/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/chainguard-dev/clog"
)

var _ resources.TagDriver = &SDKTagDriver{}

type SDKTagDriver struct {
	ec2Client *ec2.EC2
	logger    *clog.Logger
}

func NewTagDriver(logger *clog.Logger, creds config.Credentials) *SDKTagDriver {
	logger = logger.With("driver", "SDKTagDriver")
	return &SDKTagDriver{ec2Client: newEC2Client(logger, creds), logger: logger}
}

func (d *SDKTagDriver) Tag(resourceID string, tags map[string]string) error {
	if len(tags) == 0 {
		return nil
	}

	d.logger.Debugf("tagging %s with %v", resourceID, tags)
	_, err := d.ec2Client.CreateTags(&ec2.CreateTagsInput{
		Resources: []*string{aws.String(resourceID)},
		Tags:      ec2Tags(tags),
	})
	if err != nil {
		return fmt.Errorf("tagging %s: %w", resourceID, err)
	}

	return nil
}
