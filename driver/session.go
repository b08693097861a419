package driver

import (
	"ebs-image-builder/config"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/chainguard-dev/clog"
)

const defaultMaxRetries = 8

func newEC2Client(logger *clog.Logger, creds config.Credentials) *ec2.EC2 {
	awsConfig := request.WithRetryer(
		creds.GetAwsConfig().WithLogger(newDriverLogger(logger)),
		NewEC2RetryerWithRetries(defaultMaxRetries),
	)

	return ec2.New(session.Must(session.NewSession(awsConfig)))
}
