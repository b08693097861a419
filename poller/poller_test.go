package poller_test

import (
	"errors"
	"time"

	"ebs-image-builder/poller"
	"ebs-image-builder/test_helpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Poll", func() {
	var config poller.Config

	BeforeEach(func() {
		config = poller.Config{
			Resource: "vol-1234",
			Desired:  "available",
			Window: poller.Window{
				Interval: time.Millisecond,
				Timeout:  10 * time.Millisecond,
			},
		}
	})

	It("stops after exactly k checks when the k-th check succeeds", func() {
		checks := 0
		err := poller.Poll(test_helpers.Logger(GinkgoWriter), config, func() (bool, error) {
			checks++
			return checks == 4, nil
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(checks).To(Equal(4))
		Expect(poller.OutcomeOf(err)).To(Equal(poller.OutcomeSuccess))
	})

	It("performs ceil(timeout/interval) checks before timing out", func() {
		config.Window = poller.Window{Interval: 3 * time.Millisecond, Timeout: 10 * time.Millisecond}

		checks := 0
		err := poller.Poll(test_helpers.Logger(GinkgoWriter), config, func() (bool, error) {
			checks++
			return false, nil
		})
		Expect(checks).To(Equal(4))

		var timeoutErr *poller.TimeoutError
		Expect(errors.As(err, &timeoutErr)).To(BeTrue())
		Expect(timeoutErr.Attempts).To(Equal(4))
		Expect(err.Error()).To(ContainSubstring("timed out after 10ms polling on resource vol-1234"))
		Expect(poller.OutcomeOf(err)).To(Equal(poller.OutcomeTimeout))
	})

	It("does not sleep longer than the timeout", func() {
		config.Window = poller.Window{Interval: 20 * time.Millisecond, Timeout: 60 * time.Millisecond}

		start := time.Now()
		err := poller.Poll(test_helpers.Logger(GinkgoWriter), config, func() (bool, error) {
			return false, nil
		})
		Expect(err).To(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically("<", 200*time.Millisecond))
	})

	It("runs OnTimeout before returning a timeout", func() {
		called := false
		config.OnTimeout = func() { called = true }

		err := poller.Poll(test_helpers.Logger(GinkgoWriter), config, func() (bool, error) {
			return false, nil
		})
		Expect(poller.OutcomeOf(err)).To(Equal(poller.OutcomeTimeout))
		Expect(called).To(BeTrue())
	})

	It("does not run OnTimeout when the check succeeds", func() {
		called := false
		config.OnTimeout = func() { called = true }

		err := poller.Poll(test_helpers.Logger(GinkgoWriter), config, func() (bool, error) {
			return true, nil
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(called).To(BeFalse())
	})

	Context("when a check returns a recoverable error", func() {
		It("keeps polling", func() {
			checks := 0
			err := poller.Poll(test_helpers.Logger(GinkgoWriter), config, func() (bool, error) {
				checks++
				if checks < 3 {
					return false, errors.New("RequestLimitExceeded")
				}
				return true, nil
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(checks).To(Equal(3))
		})

		It("reports the last error on timeout", func() {
			err := poller.Poll(test_helpers.Logger(GinkgoWriter), config, func() (bool, error) {
				return false, errors.New("connection refused")
			})
			Expect(poller.OutcomeOf(err)).To(Equal(poller.OutcomeTimeout))
			Expect(err.Error()).To(ContainSubstring("connection refused"))
		})
	})

	Context("when a check returns a fatal error", func() {
		It("aborts on errors marked with Fatal", func() {
			checks := 0
			cause := errors.New("snapshot entered error state")
			err := poller.Poll(test_helpers.Logger(GinkgoWriter), config, func() (bool, error) {
				checks++
				return false, poller.Fatal(cause)
			})
			Expect(checks).To(Equal(1))
			Expect(errors.Is(err, cause)).To(BeTrue())

			var fatalErr *poller.FatalError
			Expect(errors.As(err, &fatalErr)).To(BeTrue())
			Expect(poller.OutcomeOf(err)).To(Equal(poller.OutcomeFatal))
		})

		It("aborts on errors the classifier considers fatal", func() {
			authErr := errors.New("UnauthorizedOperation")
			config.IsFatal = func(err error) bool { return err == authErr }
			called := false
			config.OnTimeout = func() { called = true }

			checks := 0
			err := poller.Poll(test_helpers.Logger(GinkgoWriter), config, func() (bool, error) {
				checks++
				return false, authErr
			})
			Expect(checks).To(Equal(1))
			Expect(poller.OutcomeOf(err)).To(Equal(poller.OutcomeFatal))
			Expect(called).To(BeFalse())
		})
	})

	Describe("Window", func() {
		It("rounds the number of attempts up", func() {
			Expect(poller.Window{Interval: 10 * time.Second, Timeout: 120 * time.Second}.Attempts()).To(Equal(12))
			Expect(poller.Window{Interval: 7 * time.Second, Timeout: 20 * time.Second}.Attempts()).To(Equal(3))
			Expect(poller.Window{Interval: time.Second, Timeout: 300 * time.Second}.Attempts()).To(Equal(300))
		})

		It("always allows at least one attempt", func() {
			Expect(poller.Window{}.Attempts()).To(Equal(1))
			Expect(poller.Window{Interval: time.Minute, Timeout: time.Second}.Attempts()).To(Equal(1))
		})
	})
})
