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

var _ resources.KeyPairDriver = &SDKKeyPairDriver{}

// SDKKeyPairDriver has EC2 generate key pairs and returns their private key material
type SDKKeyPairDriver struct {
	ec2Client *ec2.EC2
	logger    *clog.Logger
}

func NewKeyPairDriver(logger *clog.Logger, creds config.Credentials) *SDKKeyPairDriver {
	logger = logger.With("driver", "SDKKeyPairDriver")
	return &SDKKeyPairDriver{ec2Client: newEC2Client(logger, creds), logger: logger}
}

func (d *SDKKeyPairDriver) Create(driverConfig resources.KeyPairDriverConfig) (resources.KeyPair, error) {
	d.logger.Infof("creating key pair %s", driverConfig.Name)
	reqOutput, err := d.ec2Client.CreateKeyPair(&ec2.CreateKeyPairInput{
		KeyName:           aws.String(driverConfig.Name),
		TagSpecifications: tagSpecifications(ec2.ResourceTypeKeyPair, driverConfig.Tags),
	})
	if err != nil {
		return resources.KeyPair{}, fmt.Errorf("creating key pair %s: %w", driverConfig.Name, err)
	}

	if reqOutput.KeyMaterial == nil || *reqOutput.KeyMaterial == "" {
		return resources.KeyPair{}, errors.New("key pair material empty")
	}

	return resources.KeyPair{
		Name:     aws.StringValue(reqOutput.KeyName),
		Material: []byte(*reqOutput.KeyMaterial),
	}, nil
}

func (d *SDKKeyPairDriver) Delete(keyPair resources.KeyPair) error {
	d.logger.Infof("deleting key pair %s", keyPair.Name)
	_, err := d.ec2Client.DeleteKeyPair(&ec2.DeleteKeyPairInput{
		KeyName: aws.String(keyPair.Name),
	})
	if err != nil {
		return fmt.Errorf("deleting key pair %s: %w", keyPair.Name, err)
	}

	return nil
}
