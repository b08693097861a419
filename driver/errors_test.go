package driver_test

import (
	"errors"
	"fmt"

	"ebs-image-builder/driver"

	"github.com/aws/aws-sdk-go/aws/awserr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("error classification", func() {
	Describe("IsFatalError", func() {
		It("treats authorization and credential errors as fatal", func() {
			for _, code := range []string{"AuthFailure", "UnauthorizedOperation", "OptInRequired", "Blocked"} {
				Expect(driver.IsFatalError(awserr.New(code, "denied", nil))).To(BeTrue(), code)
			}
		})

		It("looks through wrapped errors", func() {
			err := fmt.Errorf("describing instance i-1234: %w", awserr.New("AuthFailure", "denied", nil))
			Expect(driver.IsFatalError(err)).To(BeTrue())
		})

		It("treats throttling, not found and plain errors as recoverable", func() {
			Expect(driver.IsFatalError(awserr.New("RequestLimitExceeded", "slow down", nil))).To(BeFalse())
			Expect(driver.IsFatalError(awserr.New("InvalidInstanceID.NotFound", "missing", nil))).To(BeFalse())
			Expect(driver.IsFatalError(errors.New("connection reset by peer"))).To(BeFalse())
		})
	})

	Describe("IsNotFoundError", func() {
		It("matches any NotFound code", func() {
			Expect(driver.IsNotFoundError(awserr.New("InvalidAMIID.NotFound", "missing", nil))).To(BeTrue())
			Expect(driver.IsNotFoundError(awserr.New("InvalidGroup.NotFound", "missing", nil))).To(BeTrue())
			Expect(driver.IsNotFoundError(awserr.New("InvalidGroup.InUse", "busy", nil))).To(BeFalse())
			Expect(driver.IsNotFoundError(errors.New("InvalidGroup.NotFound"))).To(BeFalse())
		})
	})
})
