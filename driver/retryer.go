package driver

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/request"
)

// operations which commonly fail with a *.NotFound error for resources that
// were created moments before
var eventuallyConsistentOperations = map[string]bool{
	"AuthorizeSecurityGroupIngress": true,
	"AttachVolume":                  true,
	"CreateTags":                    true,
	"RunInstances":                  true,
	"CreateSnapshot":                true,
}

func NewEC2RetryerWithRetries(numRetries int) EC2Retryer {
	return EC2Retryer{client.DefaultRetryer{NumMaxRetries: numRetries}}
}

// EC2Retryer also retries NotFound errors returned by EC2 operations that
// reference freshly created resources
type EC2Retryer struct {
	client.DefaultRetryer
}

// MaxRetries returns the configured number of NumMaxRetries, defaults to 3
func (r EC2Retryer) MaxRetries() int {
	if r.NumMaxRetries <= 0 {
		return 3
	}
	return r.NumMaxRetries
}

func (r EC2Retryer) ShouldRetry(req *request.Request) bool {
	if req.Error != nil && req.Operation != nil && eventuallyConsistentOperations[req.Operation.Name] {
		var awsErr awserr.Error
		if errors.As(req.Error, &awsErr) && strings.HasSuffix(awsErr.Code(), ".NotFound") {
			return true
		}
	}
	return r.DefaultRetryer.ShouldRetry(req)
}
