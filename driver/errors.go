package driver

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

var fatalErrorCodes = map[string]bool{
	"AuthFailure":           true,
	"Blocked":               true,
	"InvalidClientTokenId":  true,
	"OptInRequired":         true,
	"SignatureDoesNotMatch": true,
	"UnauthorizedOperation": true,
}

// IsFatalError reports whether err is an EC2 error that retrying cannot fix,
// such as missing permissions or invalid credentials
func IsFatalError(err error) bool {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return false
	}
	return fatalErrorCodes[awsErr.Code()]
}

// IsNotFoundError reports whether err is an EC2 *.NotFound error
func IsNotFoundError(err error) bool {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return false
	}
	return strings.HasSuffix(awsErr.Code(), ".NotFound")
}
