package manifest_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"ebs-image-builder/collection"
	"ebs-image-builder/manifest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	yaml "gopkg.in/yaml.v2"
)

var _ = Describe("Manifest", func() {
	var manifestBytes []byte
	BeforeEach(func() {
		manifestBytes = []byte(`
tests:
- name: minimal
  payload: kickstarts/minimal.ks
- name: lvm
  payload: /srv/kickstarts/lvm.ks
  disk_size_gb: 20
  instance_type: m3.medium`)
	})

	parse := func() (*manifest.Manifest, error) {
		return manifest.NewFromReader(bytes.NewReader(manifestBytes))
	}

	Context("reading the manifest", func() {
		It("reads every test case in order", func() {
			m, err := parse()
			Expect(err).ToNot(HaveOccurred())

			Expect(m.Tests).To(Equal([]manifest.TestCase{
				{Name: "minimal", Payload: "kickstarts/minimal.ks"},
				{Name: "lvm", Payload: "/srv/kickstarts/lvm.ks", DiskSizeGB: 20, InstanceType: "m3.medium"},
			}))
		})

		DescribeTable("rejects invalid test cases",
			func(tests string, message string) {
				manifestBytes = []byte(tests)
				_, err := parse()
				Expect(err).To(MatchError(ContainSubstring(message)))
			},
			Entry("no tests", "tests: []", "at least one test case"),
			Entry("missing name", "tests:\n- payload: a.ks", "name must be specified for test 0"),
			Entry("reserved name", "tests:\n- name: all\n  payload: a.ks", `name "all" is reserved`),
			Entry("unsafe name", "tests:\n- name: a b\n  payload: a.ks", "may only contain"),
			Entry("duplicate name", "tests:\n- name: a\n  payload: a.ks\n- name: a\n  payload: b.ks", "more than one test"),
			Entry("missing payload", "tests:\n- name: a", "payload must be specified for test a"),
			Entry("negative disk", "tests:\n- name: a\n  payload: a.ks\n  disk_size_gb: -1", "disk_size_gb must be positive"),
			Entry("malformed yaml", "tests: [", "parsing test manifest"),
		)
	})

	Context("selecting tests", func() {
		It("selects every test for 'all'", func() {
			m, err := parse()
			Expect(err).ToNot(HaveOccurred())

			tests, err := m.Select(manifest.AllTests)
			Expect(err).ToNot(HaveOccurred())
			Expect(tests).To(HaveLen(2))

			tests, err = m.Select("")
			Expect(err).ToNot(HaveOccurred())
			Expect(tests).To(HaveLen(2))
		})

		It("selects a single test by name", func() {
			m, err := parse()
			Expect(err).ToNot(HaveOccurred())

			tests, err := m.Select("lvm")
			Expect(err).ToNot(HaveOccurred())
			Expect(tests).To(HaveLen(1))
			Expect(tests[0].Name).To(Equal("lvm"))
		})

		It("returns an error for an unknown test", func() {
			m, err := parse()
			Expect(err).ToNot(HaveOccurred())

			_, err = m.Select("btrfs")
			Expect(err).To(MatchError(`no test named "btrfs"`))
		})
	})

	Context("loading payloads", func() {
		It("resolves relative payloads against the base directory and keeps absolute ones", func() {
			baseDir := GinkgoT().TempDir()
			absDir := GinkgoT().TempDir()
			Expect(os.MkdirAll(filepath.Join(baseDir, "kickstarts"), 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(baseDir, "kickstarts", "minimal.ks"), []byte("minimal"), 0o644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(absDir, "lvm.ks"), []byte("lvm"), 0o644)).To(Succeed())

			manifestBytes = []byte(strings.Replace(string(manifestBytes), "/srv/kickstarts", absDir, 1))
			m, err := parse()
			Expect(err).ToNot(HaveOccurred())

			Expect(m.LoadPayloads(baseDir)).To(Succeed())
			Expect(string(m.Tests[0].PayloadBytes)).To(Equal("minimal"))
			Expect(string(m.Tests[1].PayloadBytes)).To(Equal("lvm"))
		})

		It("names the test whose payload is missing", func() {
			m, err := parse()
			Expect(err).ToNot(HaveOccurred())

			err = m.LoadPayloads(GinkgoT().TempDir())
			Expect(err).To(MatchError(ContainSubstring("reading payload of test minimal")))
		})
	})

	Context("writing the report", func() {
		It("writes the expected YAML file", func() {
			report := manifest.Report{
				SeedImageID: "ami-seed",
				Passed:      1,
				Failed:      1,
				Results: []collection.Result{
					collection.Succeeded("lvm", "ami-1234"),
					{Name: "minimal", Status: collection.StatusError, Error: "timed out"},
				},
			}

			writer := &bytes.Buffer{}
			Expect(report.Write(writer)).To(Succeed())

			result := map[string]interface{}{}
			Expect(yaml.Unmarshal(writer.Bytes(), &result)).To(Succeed())
			Expect(result["seed_image_id"]).To(Equal("ami-seed"))
			Expect(result["passed"]).To(Equal(1))
			Expect(result["failed"]).To(Equal(1))

			Expect(writer.String()).To(ContainSubstring("- name: lvm\n  ami_id: ami-1234\n  status: ok\n"))
			Expect(writer.String()).To(ContainSubstring("- name: minimal\n  status: error\n  error: timed out\n"))
		})
	})
})
