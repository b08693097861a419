package publisher_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"ebs-image-builder/config"
	"ebs-image-builder/poller"
	"ebs-image-builder/publisher"
	"ebs-image-builder/remote"
	"ebs-image-builder/resources"
	"ebs-image-builder/resources/resourcesfakes"
	"ebs-image-builder/test_helpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ImageUploader", func() {
	const threeAndAHalfGiB = int64(7) << 29

	var (
		drivers      *fakeDrivers
		fakeExecutor *resourcesfakes.FakeRemoteExecutor
		fakeStreamer *resourcesfakes.FakeImageStreamer
		uploader     *publisher.ImageUploader
		imagePath    string
		commandsMu   sync.Mutex
		commands     []resources.RemoteCommand
		identity     string
	)

	publisherConfig := publisher.Config{
		RegionName:  "us-east-1",
		ResourceTag: "ebs-image-builder",
		UtilityImage: config.UtilityImage{
			ImageID:       "ami-utility",
			CommandPrefix: "sudo",
			User:          "ec2-user",
			InstanceType:  "m1.small",
		},
		AmiConfiguration: config.AmiConfiguration{
			Architecture:       config.ArchitectureX86_64,
			VirtualizationType: config.ParavirtualVirtualization,
		},
		Timings: fastTimings,
	}

	executed := func() []string {
		commandsMu.Lock()
		defer commandsMu.Unlock()

		var lines []string
		for _, c := range commands {
			lines = append(lines, strings.TrimSpace(c.User+" "+c.Prefix+" "+c.Command))
		}
		return lines
	}

	BeforeEach(func() {
		var err error
		imagePath, err = test_helpers.SparseImage(GinkgoT().TempDir(), "disk.img", threeAndAHalfGiB)
		Expect(err).ToNot(HaveOccurred())

		drivers = newFakeDrivers()
		commands = nil
		identity = "uid=0(root) gid=0(root) groups=0(root)"

		fakeExecutor = &resourcesfakes.FakeRemoteExecutor{}
		fakeExecutor.ExecuteCalls(func(c resources.RemoteCommand) (resources.RemoteOutput, error) {
			commandsMu.Lock()
			commands = append(commands, c)
			commandsMu.Unlock()

			if c.Command == "/bin/id" {
				return resources.RemoteOutput{Stdout: identity + "\n"}, nil
			}
			return resources.RemoteOutput{}, nil
		})
		fakeStreamer = &resourcesfakes.FakeImageStreamer{}

		uploader = publisher.NewImageUploader(test_helpers.Logger(GinkgoWriter), drivers.ds, fakeExecutor, fakeStreamer, publisherConfig)
	})

	It("writes the image onto a volume sized for it and returns the snapshot", func() {
		snapshot, err := uploader.Upload(imagePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(snapshot.ID).To(Equal("snap-1234"))
		Expect(snapshot.State).To(Equal(resources.SnapshotStateCompleted))

		Expect(drivers.securityGroups.CreateCallCount()).To(Equal(1))
		sgConfig := drivers.securityGroups.CreateArgsForCall(0)
		Expect(sgConfig.Name).To(HavePrefix("ebs-helper-tmp-"))
		Expect(sgConfig.IngressPorts).To(Equal([]resources.PortRange{{From: 22, To: 22}}))
		Expect(sgConfig.Tags).To(Equal(map[string]string{"Name": "ebs-image-builder"}))

		Expect(drivers.instances.CreateCallCount()).To(Equal(1))
		Expect(drivers.instances.CreateArgsForCall(0)).To(Equal(resources.InstanceDriverConfig{
			ImageID:         "ami-utility",
			InstanceType:    "m1.small",
			KeyName:         sgConfig.Name,
			SecurityGroupID: "sg-1234",
			Tags:            map[string]string{"Name": "ebs-image-builder"},
		}))

		Expect(drivers.volumes.CreateCallCount()).To(Equal(1))
		Expect(drivers.volumes.CreateArgsForCall(0)).To(Equal(resources.VolumeDriverConfig{
			SizeGB:           4,
			AvailabilityZone: "us-east-1a",
			Tags:             map[string]string{"Name": "ebs-image-builder"},
		}))
		Expect(drivers.volumes.AttachArgsForCall(0)).To(Equal(resources.VolumeAttachment{
			VolumeID:   "vol-1234",
			InstanceID: "i-1234",
			Device:     "/dev/sdh",
		}))

		Expect(executed()).To(Equal([]string{
			"ec2-user  /bin/true",
			"ec2-user sudo mkdir -p /root/.ssh",
			"ec2-user sudo chmod 700 /root/.ssh",
			"ec2-user sudo cp -f /home/ec2-user/.ssh/authorized_keys /root/.ssh/",
			"ec2-user sudo chmod 600 /root/.ssh/authorized_keys",
			"root  /bin/id",
			"root  sync",
		}))

		Expect(fakeStreamer.StreamCallCount()).To(Equal(1))
		streamedPath, target := fakeStreamer.StreamArgsForCall(0)
		Expect(streamedPath).To(Equal(imagePath))
		Expect(target.Host).To(Equal("ec2-1-2-3-4.compute-1.amazonaws.com"))
		Expect(target.User).To(Equal("root"))
		Expect(target.Command).To(Equal(publisher.WriteImageCommand("/dev/xvdh")))

		Expect(drivers.snapshots.CreateArgsForCall(0).VolumeID).To(Equal("vol-1234"))
		Expect(drivers.snapshots.CreateArgsForCall(0).Description).To(ContainSubstring("disk.img"))
		Expect(drivers.snapshots.DeleteCallCount()).To(BeZero())

		Expect(drivers.volumes.DetachCallCount()).To(Equal(1))
		Expect(drivers.volumes.DeleteCallCount()).To(Equal(1))
		Expect(drivers.volumes.DeleteArgsForCall(0).ID).To(Equal("vol-1234"))
		drivers.expectReleased(true)

		_, statErr := os.Stat(target.KeyPath)
		Expect(os.IsNotExist(statErr)).To(BeTrue(), "Expected the private key file to be removed")
	})

	It("deletes the volume before terminating the utility instance", func() {
		var order []string
		drivers.volumes.DeleteCalls(func(resources.Volume) error {
			order = append(order, "delete-volume")
			return nil
		})
		drivers.instances.TerminateCalls(func(resources.Instance) error {
			order = append(order, "terminate")
			return nil
		})

		_, err := uploader.Upload(imagePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(order).To(Equal([]string{"delete-volume", "terminate"}))
	})

	It("skips enabling root when the utility image logs in as root", func() {
		rootConfig := publisherConfig
		rootConfig.UtilityImage.User = "root"
		rootConfig.UtilityImage.CommandPrefix = ""
		uploader = publisher.NewImageUploader(test_helpers.Logger(GinkgoWriter), drivers.ds, fakeExecutor, fakeStreamer, rootConfig)

		_, err := uploader.Upload(imagePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(executed()).To(Equal([]string{"root  /bin/true", "root  /bin/id", "root  sync"}))
	})

	Context("when root login does not yield uid 0", func() {
		BeforeEach(func() {
			identity = "uid=1000(ec2-user) gid=1000(ec2-user)"
		})

		It("fails with a postcondition error without creating a volume", func() {
			_, err := uploader.Upload(imagePath)
			Expect(err).To(MatchError(publisher.ErrPostcondition))
			Expect(err.Error()).To(ContainSubstring("uid=1000"))

			Expect(drivers.volumes.CreateCallCount()).To(BeZero())
			Expect(fakeStreamer.StreamCallCount()).To(BeZero())
			drivers.expectReleased(true)
		})
	})

	It("terminates the utility instance when it never starts running", func() {
		drivers.instanceStates(resources.InstanceStatePending)

		_, err := uploader.Upload(imagePath)
		Expect(err).To(HaveOccurred())
		Expect(poller.OutcomeOf(err)).To(Equal(poller.OutcomeTimeout))

		Expect(fakeExecutor.ExecuteCallCount()).To(BeZero())
		drivers.expectReleased(true)
	})

	It("gives up when ssh never becomes reachable", func() {
		fakeExecutor.ExecuteReturns(resources.RemoteOutput{}, errors.New("connection refused"))

		_, err := uploader.Upload(imagePath)
		Expect(poller.OutcomeOf(err)).To(Equal(poller.OutcomeTimeout))
		Expect(err.Error()).To(ContainSubstring("connection refused"))

		Expect(fakeExecutor.ExecuteCallCount()).To(Equal(fastWindow.Attempts()))
		Expect(drivers.volumes.CreateCallCount()).To(BeZero())
		drivers.expectReleased(true)
	})

	It("discards the volume when streaming the image fails", func() {
		fakeStreamer.StreamReturns(&remote.ExitError{Command: publisher.WriteImageCommand(publisher.RemoteDevice), Status: 1, Stderr: "dd: error writing"})

		_, err := uploader.Upload(imagePath)
		var exitErr *remote.ExitError
		Expect(errors.As(err, &exitErr)).To(BeTrue())
		Expect(exitErr.Status).To(Equal(1))

		Expect(drivers.snapshots.CreateCallCount()).To(BeZero())
		Expect(drivers.volumes.DetachCallCount()).To(Equal(1))
		Expect(drivers.volumes.DeleteCallCount()).To(Equal(1))
		drivers.expectReleased(true)
	})

	It("fails when the snapshot ends up in the error state", func() {
		drivers.snapshots.DescribeReturns(resources.Snapshot{ID: "snap-1234", State: resources.SnapshotStateError}, nil)

		_, err := uploader.Upload(imagePath)
		Expect(poller.OutcomeOf(err)).To(Equal(poller.OutcomeFatal))
		Expect(err).To(MatchError(publisher.ErrPostcondition))

		Expect(drivers.volumes.DeleteCallCount()).To(Equal(1))
		Expect(drivers.snapshots.DeleteCallCount()).To(Equal(1))
		Expect(drivers.snapshots.DeleteArgsForCall(0).ID).To(Equal("snap-1234"))
		drivers.expectReleased(true)
	})

	It("deletes the snapshot when it never completes", func() {
		drivers.snapshots.DescribeReturns(resources.Snapshot{ID: "snap-1234", State: resources.SnapshotStatePending, Progress: "12%"}, nil)

		_, err := uploader.Upload(imagePath)
		Expect(poller.OutcomeOf(err)).To(Equal(poller.OutcomeTimeout))
		Expect(err).To(MatchError(ContainSubstring("snap-1234")))

		Expect(drivers.snapshots.DescribeCallCount()).To(Equal(fastWindow.Attempts()))
		Expect(drivers.snapshots.DeleteCallCount()).To(Equal(1))
		Expect(drivers.snapshots.DeleteArgsForCall(0).ID).To(Equal("snap-1234"))
		Expect(drivers.volumes.DeleteCallCount()).To(Equal(1))
		drivers.expectReleased(true)
	})

	It("still fails with the snapshot timeout when the snapshot cannot be deleted", func() {
		drivers.snapshots.DescribeReturns(resources.Snapshot{ID: "snap-1234", State: resources.SnapshotStatePending}, nil)
		drivers.snapshots.DeleteReturns(errors.New("snapshot in use"))

		_, err := uploader.Upload(imagePath)
		Expect(poller.OutcomeOf(err)).To(Equal(poller.OutcomeTimeout))
		Expect(drivers.snapshots.DeleteCallCount()).To(Equal(1))
		drivers.expectReleased(true)
	})

	It("releases the security group when the key pair cannot be created", func() {
		drivers.keyPairs.CreateReturns(resources.KeyPair{}, errors.New("key pair limit exceeded"))

		_, err := uploader.Upload(imagePath)
		Expect(err).To(MatchError(ContainSubstring("key pair limit exceeded")))

		Expect(drivers.instances.CreateCallCount()).To(BeZero())
		Expect(drivers.instances.TerminateCallCount()).To(BeZero())
		Expect(drivers.keyPairs.DeleteCallCount()).To(BeZero())
		Expect(drivers.securityGroups.DeleteCallCount()).To(Equal(1))
	})

	It("does not touch the cloud when the image file is missing", func() {
		_, err := uploader.Upload(filepath.Join(GinkgoT().TempDir(), "missing.img"))
		Expect(err).To(MatchError(ContainSubstring("reading image file")))
		Expect(drivers.ds.Invocations()).To(BeEmpty())
	})

	It("rejects a second upload while one is in progress", func() {
		streaming := make(chan struct{})
		proceed := make(chan struct{})
		fakeStreamer.StreamCalls(func(string, resources.RemoteCommand) error {
			close(streaming)
			<-proceed
			return nil
		})

		done := make(chan error, 1)
		go func() {
			defer GinkgoRecover()
			_, err := uploader.Upload(imagePath)
			done <- err
		}()

		Eventually(streaming).Should(BeClosed())
		_, err := uploader.Upload(imagePath)
		Expect(err).To(MatchError(publisher.ErrUploadInProgress))

		close(proceed)
		Eventually(done).Should(Receive(BeNil()))
		Expect(drivers.securityGroups.CreateCallCount()).To(Equal(1))
	})

	Describe("UploadAndRegister", func() {
		It("registers the uploaded snapshot with the configured architecture and ephemeral map", func() {
			ami, err := uploader.UploadAndRegister(imagePath)
			Expect(err).ToNot(HaveOccurred())
			Expect(ami.ID).To(Equal("ami-1234"))

			Expect(drivers.amis.RegisterCallCount()).To(Equal(1))
			registerConfig := drivers.amis.RegisterArgsForCall(0)
			Expect(registerConfig.SnapshotID).To(Equal("snap-1234"))
			Expect(registerConfig.Architecture).To(Equal(config.ArchitectureX86_64))
			Expect(registerConfig.EphemeralMap).To(BeTrue())
			Expect(registerConfig.KernelID).To(Equal("aki-b4aa75dd"))
		})

		It("does not register anything when the upload fails", func() {
			drivers.snapshots.CreateReturns(resources.Snapshot{}, errors.New("snapshot limit exceeded"))

			_, err := uploader.UploadAndRegister(imagePath)
			Expect(err).To(MatchError(ContainSubstring("snapshot limit exceeded")))
			Expect(drivers.amis.RegisterCallCount()).To(BeZero())
		})
	})
})

var _ = DescribeTable("VolumeSizeGiB",
	func(size int64, expected int64) {
		Expect(publisher.VolumeSizeGiB(size)).To(Equal(expected))
	},
	Entry("empty image", int64(0), int64(1)),
	Entry("one byte", int64(1), int64(1)),
	Entry("exactly one GiB", int64(1)<<30, int64(1)),
	Entry("one byte over a GiB", int64(1)<<30+1, int64(2)),
	Entry("3.5 GiB", int64(7)<<29, int64(4)),
)
