package config_test

import (
	"bytes"
	"encoding/json"

	"ebs-image-builder/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type configModifier func(*config.Config)

func identityModifier(_ *config.Config) {}

func parseConfig(s string, modify configModifier) (config.Config, error) {
	configJSON := []byte(s)
	configReader := bytes.NewBuffer(configJSON)
	c, err := config.NewFromReader(configReader)
	Expect(err).ToNot(HaveOccurred())

	modify(&c)
	modifiedBytes, err := json.Marshal(c)
	if err != nil {
		return config.Config{}, err
	}

	modifiedConfigReader := bytes.NewBuffer(modifiedBytes)
	return config.NewFromReader(modifiedConfigReader)
}

var _ = Describe("Config", func() {
	baseJSON := `
    {
      "region": {
        "name": "us-east-1",
        "credentials": {
          "access_key": "access-key",
          "secret_key": "secret-key"
        }
      },
      "ami_configuration": {
        "description": "Example AMI"
      }
    }
  `

	Describe("NewFromReader", func() {
		It("returns a Config with architecture, virtualization type and installer defaults", func() {
			c, err := parseConfig(baseJSON, identityModifier)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.ResourceTag).To(Equal(config.DefaultResourceTag))
			Expect(c.AmiConfiguration.Architecture).To(Equal(config.ArchitectureX86_64))
			Expect(c.AmiConfiguration.VirtualizationType).To(Equal(config.ParavirtualVirtualization))
			Expect(c.AmiConfiguration.Name).To(BeEmpty())
			Expect(c.Installer.InstanceType).To(Equal("m1.small"))
			Expect(c.Installer.DiskSizeGB).To(Equal(int64(10)))
			Expect(c.Installer.MaxParallel).To(BeZero())
			Expect(c.Timeouts.AttachSettleSeconds).To(BeNil())
		})

		It("copies the region name into the credentials", func() {
			c, err := parseConfig(baseJSON, identityModifier)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Region.Credentials.Region).To(Equal("us-east-1"))
		})

		It("fills the utility image from the region defaults", func() {
			c, err := parseConfig(baseJSON, identityModifier)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.UtilityImage).To(Equal(config.UtilityImage{
				ImageID:       "ami-6f640c06",
				CommandPrefix: "sudo",
				User:          "ec2-user",
				InstanceType:  "m1.small",
			}))
		})

		It("keeps an explicit utility image and does not apply the region prefix to it", func() {
			c, err := parseConfig(baseJSON, func(c *config.Config) {
				c.UtilityImage = config.UtilityImage{ImageID: "ami-custom", User: "root"}
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(c.UtilityImage.ImageID).To(Equal("ami-custom"))
			Expect(c.UtilityImage.User).To(Equal("root"))
			Expect(c.UtilityImage.CommandPrefix).To(BeEmpty())
		})

		It("keeps the configured settle delay, including zero", func() {
			c, err := parseConfig(baseJSON, func(c *config.Config) {
				zero := 0
				c.Timeouts.AttachSettleSeconds = &zero
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Timeouts.AttachSettleSeconds).ToNot(BeNil())
			Expect(*c.Timeouts.AttachSettleSeconds).To(BeZero())
		})

		Context("with an invalid 'region' specified", func() {
			It("returns an error when 'name' is missing", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Region.Name = ""
				})
				Expect(err).To(MatchError("name must be specified for region"))
			})

			It("returns an error for a region without a default utility image", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Region.Name = "eu-central-1"
					c.UtilityImage = config.UtilityImage{}
				})
				Expect(err).To(MatchError("image_id must be specified for utility_image: no default utility image for region eu-central-1"))
			})

			It("accepts any region when the utility image is given", func() {
				c, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Region.Name = "eu-central-1"
					c.UtilityImage = config.UtilityImage{ImageID: "ami-custom"}
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(c.UtilityImage.User).To(Equal("root"))
				Expect(c.UtilityImage.CommandPrefix).To(BeEmpty())
			})

			It("logs in to a custom utility image in a known region as root", func() {
				c, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Region.Name = "us-east-1"
					c.UtilityImage = config.UtilityImage{ImageID: "ami-custom"}
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(c.UtilityImage.ImageID).To(Equal("ami-custom"))
				Expect(c.UtilityImage.User).To(Equal("root"))
			})

			It("keeps the user given for a custom utility image", func() {
				c, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Region.Name = "eu-central-1"
					c.UtilityImage = config.UtilityImage{ImageID: "ami-custom", User: "admin", CommandPrefix: "sudo"}
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(c.UtilityImage.User).To(Equal("admin"))
				Expect(c.UtilityImage.CommandPrefix).To(Equal("sudo"))
			})
		})

		Context("with an invalid 'ami_configuration' specified", func() {
			It("returns an error when 'virtualization_type' is not known", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.AmiConfiguration.VirtualizationType = "bogus"
				})
				Expect(err).To(MatchError("virtualization_type must be one of: ['paravirtual', 'hvm']"))
			})

			It("returns an error when 'architecture' is not known", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.AmiConfiguration.Architecture = "arm64"
				})
				Expect(err).To(MatchError("architecture must be one of: ['x86_64', 'i386']"))
			})
		})

		Context("with an invalid 'installer' specified", func() {
			It("returns an error when 'max_parallel' is negative", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Installer.MaxParallel = -1
				})
				Expect(err).To(MatchError("max_parallel must not be negative for installer"))
			})

			It("returns an error when 'disk_size_gb' is negative", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Installer.DiskSizeGB = -5
				})
				Expect(err).To(MatchError("disk_size_gb must be positive for installer"))
			})
		})

		It("returns an error for a negative settle delay", func() {
			_, err := parseConfig(baseJSON, func(c *config.Config) {
				negative := -1
				c.Timeouts.AttachSettleSeconds = &negative
			})
			Expect(err).To(MatchError("attach_settle_seconds must not be negative"))
		})
	})

	Describe("PVGrubKernel", func() {
		It("returns the pv-grub kernel for each architecture", func() {
			aki, ok := config.PVGrubKernel("us-east-1", config.ArchitectureX86_64)
			Expect(ok).To(BeTrue())
			Expect(aki).To(Equal("aki-b4aa75dd"))

			aki, ok = config.PVGrubKernel("sa-east-1", config.ArchitectureI386)
			Expect(ok).To(BeTrue())
			Expect(aki).To(Equal("aki-ce8f51d3"))
		})

		It("reports unknown regions", func() {
			_, ok := config.PVGrubKernel("eu-central-1", config.ArchitectureX86_64)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("GetAwsConfig", func() {
		var keyID = "test-key-id"
		var keyValue = "test-key-value"
		var token = "test-token"
		var region = "us-east-1"
		var roleArn = "arn:aws:iam::123456789012:role/TestRole"

		Context("when both key fields are provided", func() {
			It("returns static credentials with correct values", func() {
				creds := config.Credentials{
					AccessKey: keyID,
					SecretKey: keyValue,
					Region:    region,
				}

				awsCfg := creds.GetAwsConfig()

				Expect(*awsCfg.Region).To(Equal(region))

				v, err := awsCfg.Credentials.Get()
				Expect(err).NotTo(HaveOccurred())
				Expect(v.AccessKeyID).To(Equal(keyID))
				Expect(v.SecretAccessKey).To(Equal(keyValue))
				Expect(v.SessionToken).To(BeEmpty())
				Expect(v.ProviderName).To(Equal("StaticProvider"))
			})
		})

		Context("when session token is also provided", func() {
			It("includes the token in static credentials", func() {
				creds := config.Credentials{
					AccessKey:    keyID,
					SecretKey:    keyValue,
					SessionToken: token,
					Region:       region,
				}

				v, err := creds.GetAwsConfig().Credentials.Get()
				Expect(err).NotTo(HaveOccurred())
				Expect(v.SessionToken).To(Equal(token))
				Expect(v.ProviderName).To(Equal("StaticProvider"))
			})
		})

		Context("when no key fields are provided", func() {
			It("leaves credentials to the default chain", func() {
				creds := config.Credentials{
					Region: region,
				}

				awsCfg := creds.GetAwsConfig()

				Expect(*awsCfg.Region).To(Equal(region))
				Expect(awsCfg.Credentials).To(BeNil())
			})
		})

		Context("when only access key is provided", func() {
			It("does not use static credentials", func() {
				creds := config.Credentials{
					AccessKey: keyID,
					Region:    region,
				}

				Expect(creds.GetAwsConfig().Credentials).To(BeNil())
			})
		})

		Context("when role ARN is provided with both key fields", func() {
			It("does not use static credentials directly", func() {
				creds := config.Credentials{
					AccessKey: keyID,
					SecretKey: keyValue,
					RoleArn:   roleArn,
					Region:    region,
				}

				awsCfg := creds.GetAwsConfig()

				Expect(*awsCfg.Region).To(Equal(region))
				Expect(awsCfg.Credentials).NotTo(BeNil())
				Expect(awsCfg.Credentials.IsExpired()).To(BeTrue())
			})
		})

		Context("when role ARN is provided without key fields", func() {
			It("assumes the role with the default chain", func() {
				creds := config.Credentials{
					RoleArn: roleArn,
					Region:  region,
				}

				awsCfg := creds.GetAwsConfig()

				Expect(awsCfg.Credentials).NotTo(BeNil())
				Expect(awsCfg.Credentials.IsExpired()).To(BeTrue())
			})
		})
	})
})
