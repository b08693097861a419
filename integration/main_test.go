package integration_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"ebs-image-builder/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Main", func() {
	var configPath string

	BeforeEach(func() {
		integrationConfig, err := json.Marshal(config.Config{
			Region: config.Region{Name: "us-east-1"},
		})
		Expect(err).ToNot(HaveOccurred())

		configPath = filepath.Join(GinkgoT().TempDir(), "integration-config.json")
		Expect(os.WriteFile(configPath, integrationConfig, 0o600)).To(Succeed())
	})

	run := func(args ...string) *gexec.Session {
		command := exec.Command(pathToBinary, args...)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
		Eventually(session, 30*time.Second).Should(gexec.Exit())
		return session
	}

	It("prints usage and exits non-zero when a required flag is missing", func() {
		session := run("upload", "-c", configPath)
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say(`required flag\(s\) "image" not set`))
		Expect(session.Err).To(gbytes.Say("Usage:"))
	})

	It("reports a missing machine image without printing usage", func() {
		session := run("upload", "-c", configPath, "--image", filepath.Join(GinkgoT().TempDir(), "root.img"))
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("machine image not found at"))
		Expect(session.Err.Contents()).ToNot(ContainSubstring("Usage:"))
		Expect(session.Out.Contents()).To(BeEmpty())
	})

	It("reports an invalid configuration", func() {
		Expect(os.WriteFile(configPath, []byte(`{"region": {"name": "eu-central-1"}}`), 0o600)).To(Succeed())

		session := run("register", "-c", configPath, "--snapshot", "snap-1234")
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("no default utility image for region eu-central-1"))
	})

	It("lists the subcommands in its help", func() {
		session := run("--help")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Out).To(gbytes.Say("install"))
		Expect(session.Out).To(gbytes.Say("register"))
		Expect(session.Out).To(gbytes.Say("test"))
		Expect(session.Out).To(gbytes.Say("upload"))
	})
})
