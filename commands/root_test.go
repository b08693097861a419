package commands

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Root", func() {
	var (
		stdout  *bytes.Buffer
		stderr  *bytes.Buffer
		tempDir string
	)

	execute := func(args ...string) error {
		cmd := Root()
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	writeFile := func(name string, contents string) string {
		path := filepath.Join(tempDir, name)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(contents), 0o644)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
		tempDir = GinkgoT().TempDir()
	})

	It("has a subcommand per entry point", func() {
		var names []string
		for _, sub := range Root().Commands() {
			names = append(names, sub.Name())
		}
		Expect(names).To(ContainElements("upload", "register", "install", "test"))
	})

	It("defaults the test case to every test", func() {
		flag := Test(&globalOptions{}).Flags().Lookup("test-case")
		Expect(flag).ToNot(BeNil())
		Expect(flag.DefValue).To(Equal("all"))
	})

	DescribeTable("rejects missing flags before doing any work",
		func(args []string, message string) {
			err := execute(args...)
			Expect(err).To(MatchError(ContainSubstring(message)))
			Expect(stdout.String()).To(BeEmpty())
		},
		Entry("config", []string{"register", "--snapshot", "snap-1234"}, `"config"`),
		Entry("upload image", []string{"upload", "-c", "config.json"}, `"image"`),
		Entry("register snapshot", []string{"register", "-c", "config.json"}, `"snapshot"`),
		Entry("install source ami", []string{"install", "-c", "config.json", "--payload", "ks.cfg"}, `"source-ami"`),
		Entry("install payload", []string{"install", "-c", "config.json", "--source-ami", "ami-seed"}, `"payload"`),
		Entry("test suite", []string{"test", "-c", "config.json", "--seed-ami", "ami-seed"}, `"suite"`),
		Entry("test seed", []string{"test", "-c", "config.json", "--suite", "suite.yml"}, "seed-ami"),
	)

	It("rejects both a seed ami and a seed image", func() {
		err := execute("test", "-c", "config.json", "--suite", "suite.yml", "--seed-ami", "ami-seed", "--image", "seed.img")
		Expect(err).To(MatchError(ContainSubstring("none of the others can be")))
	})

	It("fails when the machine image does not exist", func() {
		err := execute("upload", "-c", "config.json", "--image", filepath.Join(tempDir, "missing.img"))
		Expect(err).To(MatchError(ContainSubstring("machine image not found at")))
	})

	It("fails when the config file does not exist", func() {
		image := writeFile("disk.img", "")
		err := execute("upload", "-c", filepath.Join(tempDir, "missing.json"), "--image", image)
		Expect(err).To(MatchError(ContainSubstring("opening config file")))
	})

	It("fails when the config file is invalid", func() {
		configPath := writeFile("config.json", `{"region": {}}`)
		err := execute("register", "-c", configPath, "--snapshot", "snap-1234")
		Expect(err).To(MatchError(ContainSubstring("name must be specified for region")))
	})

	It("fails when the installer payload cannot be read", func() {
		err := execute("install", "-c", "config.json", "--source-ami", "ami-seed", "--payload", filepath.Join(tempDir, "missing.ks"))
		Expect(err).To(MatchError(ContainSubstring("reading payload")))
	})

	It("fails when the selected test does not exist", func() {
		suitePath := writeFile("suite.yml", "tests:\n- name: minimal\n  payload: minimal.ks\n")
		err := execute("test", "-c", "config.json", "--suite", suitePath, "--seed-ami", "ami-seed", "--test-case", "lvm")
		Expect(err).To(MatchError(ContainSubstring(`no test named "lvm"`)))
	})

	Describe("readSuite", func() {
		It("loads only the payloads of the selected tests", func() {
			writeFile("kickstarts/minimal.ks", "minimal")
			suitePath := writeFile("suite.yml", "tests:\n- name: minimal\n  payload: kickstarts/minimal.ks\n- name: lvm\n  payload: kickstarts/missing.ks\n")

			tests, err := readSuite(suitePath, "minimal")
			Expect(err).ToNot(HaveOccurred())
			Expect(tests).To(HaveLen(1))
			Expect(string(tests[0].PayloadBytes)).To(Equal("minimal"))

			_, err = readSuite(suitePath, "all")
			Expect(err).To(MatchError(ContainSubstring("reading payload of test lvm")))
		})
	})
})
