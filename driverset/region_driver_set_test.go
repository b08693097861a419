package driverset_test

import (
	"ebs-image-builder/config"
	"ebs-image-builder/driver"
	"ebs-image-builder/driverset"
	"ebs-image-builder/test_helpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RegionDriverSet", func() {
	It("returns drivers of the correct type", func() {
		creds := config.Credentials{Region: "us-east-1"}
		ds := driverset.NewRegionDriverSet(test_helpers.Logger(GinkgoWriter), creds)

		Expect(ds.SecurityGroupDriver()).To(BeAssignableToTypeOf(&driver.SDKSecurityGroupDriver{}))
		Expect(ds.KeyPairDriver()).To(BeAssignableToTypeOf(&driver.SDKKeyPairDriver{}))
		Expect(ds.InstanceDriver()).To(BeAssignableToTypeOf(&driver.SDKInstanceDriver{}))
		Expect(ds.VolumeDriver()).To(BeAssignableToTypeOf(&driver.SDKVolumeDriver{}))
		Expect(ds.SnapshotDriver()).To(BeAssignableToTypeOf(&driver.SDKSnapshotDriver{}))
		Expect(ds.AmiDriver()).To(BeAssignableToTypeOf(&driver.SDKAmiDriver{}))
		Expect(ds.TagDriver()).To(BeAssignableToTypeOf(&driver.SDKTagDriver{}))
	})
})
