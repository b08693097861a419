package collection_test

import (
	"errors"
	"fmt"
	"sync"

	"ebs-image-builder/collection"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Results", func() {
	It("keeps one result per test name in name order", func() {
		r := collection.Results{}
		r.Add(collection.Succeeded("minimal", "ami-1"))
		r.Add(collection.Failed("desktop", errors.New("timed out")))
		r.Add(collection.Succeeded("desktop", "ami-2"))

		Expect(r.Len()).To(Equal(2))
		Expect(r.GetAll()).To(Equal([]collection.Result{
			{Name: "desktop", AmiID: "ami-2", Status: collection.StatusOK},
			{Name: "minimal", AmiID: "ami-1", Status: collection.StatusOK},
		}))
		Expect(r.Failures()).To(BeZero())
	})

	It("records the error message of failed runs", func() {
		r := collection.Results{}
		r.Add(collection.Failed("server", errors.New("image ami-3 entered failed state")))

		result, ok := r.Get("server")
		Expect(ok).To(BeTrue())
		Expect(result.Failed()).To(BeTrue())
		Expect(result.Status).To(Equal(collection.StatusError))
		Expect(result.Error).To(Equal("image ami-3 entered failed state"))
		Expect(r.Failures()).To(Equal(1))

		_, ok = r.Get("missing")
		Expect(ok).To(BeFalse())
	})

	It("accepts results from many goroutines", func() {
		r := collection.Results{}
		wg := sync.WaitGroup{}
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				r.Add(collection.Succeeded(fmt.Sprintf("test-%02d", i), fmt.Sprintf("ami-%d", i)))
			}(i)
		}
		wg.Wait()

		Expect(r.Len()).To(Equal(50))
		Expect(r.GetAll()[0].Name).To(Equal("test-00"))
	})
})
