package driver_test

import (
	"fmt"
	"time"

	"ebs-image-builder/driver"
	"ebs-image-builder/resources"
	"ebs-image-builder/test_helpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	uuid "github.com/satori/go.uuid"
)

var _ = Describe("Security Group and Key Pair Driver Lifecycle", func() {
	It("creates and deletes a temporary security group and key pair", func() {
		creds := liveCredentials()
		logger := test_helpers.Logger(GinkgoWriter)
		name := fmt.Sprintf("ebs-image-builder-test-%s", uuid.NewV4().String())
		tags := map[string]string{"Name": "ebs-image-builder-test"}

		sgDriver := driver.NewSecurityGroupDriver(logger, creds)
		group, err := sgDriver.Create(resources.SecurityGroupDriverConfig{
			Name:         name,
			IngressPorts: []resources.PortRange{{From: 22, To: 22}, {From: 5900, To: 5950}},
			Tags:         tags,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(group.ID).To(HavePrefix("sg-"))

		kpDriver := driver.NewKeyPairDriver(logger, creds)
		keyPair, err := kpDriver.Create(resources.KeyPairDriverConfig{Name: name, Tags: tags})
		Expect(err).ToNot(HaveOccurred())
		Expect(keyPair.Name).To(Equal(name))
		Expect(string(keyPair.Material)).To(ContainSubstring("PRIVATE KEY"))

		Expect(kpDriver.Delete(keyPair)).To(Succeed())
		Expect(sgDriver.Delete(group)).To(Succeed())

		By("treating a repeated security group delete as already done")
		Expect(sgDriver.Delete(group)).To(Succeed())
	})
})

var _ = Describe("Volume and Snapshot Driver Lifecycle", func() {
	It("creates a volume, snapshots it and deletes the volume", func() {
		creds := liveCredentials()
		az := liveAvailabilityZone()
		logger := test_helpers.Logger(GinkgoWriter)
		tags := map[string]string{"Name": "ebs-image-builder-test"}

		volumeDriver := driver.NewVolumeDriver(logger, creds)
		volume, err := volumeDriver.Create(resources.VolumeDriverConfig{SizeGB: 1, AvailabilityZone: az, Tags: tags})
		Expect(err).ToNot(HaveOccurred())
		Expect(volume.SizeGB).To(Equal(int64(1)))

		defer func() {
			Expect(volumeDriver.Delete(volume)).To(Succeed())
		}()

		Eventually(func() (string, error) {
			v, err := volumeDriver.Describe(volume)
			return v.State, err
		}, 5*time.Minute, 5*time.Second).Should(Equal(resources.VolumeStateAvailable))

		snapshotDriver := driver.NewSnapshotDriver(logger, creds)
		snapshot, err := snapshotDriver.Create(resources.SnapshotDriverConfig{
			VolumeID:    volume.ID,
			Description: "ebs-image-builder driver test",
			Tags:        tags,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(snapshot.ID).To(HavePrefix("snap-"))

		Eventually(func() (string, error) {
			s, err := snapshotDriver.Describe(snapshot)
			return s.State, err
		}, 20*time.Minute, 10*time.Second).Should(Equal(resources.SnapshotStateCompleted))

		Expect(snapshotDriver.Delete(snapshot)).To(Succeed())

		By("treating a repeated snapshot delete as already done")
		Expect(snapshotDriver.Delete(snapshot)).To(Succeed())
	})
})

var _ = Describe("AmiDriver", func() {
	It("reports an unknown image as not existing", func() {
		creds := liveCredentials()
		amiDriver := driver.NewAmiDriver(test_helpers.Logger(GinkgoWriter), creds)

		ami, err := amiDriver.Describe(resources.Ami{ID: "ami-00000000"})
		Expect(err).ToNot(HaveOccurred())
		Expect(ami.Exists).To(BeFalse())
	})

	It("treats deregistering an unknown image as already done", func() {
		creds := liveCredentials()
		amiDriver := driver.NewAmiDriver(test_helpers.Logger(GinkgoWriter), creds)

		Expect(amiDriver.Deregister(resources.Ami{ID: "ami-00000000"})).To(Succeed())
	})
})
