package commands

import (
	"fmt"
	"os"

	"ebs-image-builder/publisher"

	"github.com/spf13/cobra"
)

// Install returns the command running an installer payload on a source AMI
func Install(opts *globalOptions) *cobra.Command {
	var (
		installerConfig publisher.InstallerConfig
		payloadPath     string
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Run an installer on a source AMI and capture the result as a new AMI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if installerConfig.DiskSizeGB < 0 {
				return fmt.Errorf("--disk-size must be positive")
			}

			payload, err := os.ReadFile(payloadPath)
			if err != nil {
				return fmt.Errorf("reading payload: %w", err)
			}
			installerConfig.Payload = payload

			env, err := loadEnvironment(cmd, opts)
			if err != nil {
				return err
			}

			ami, err := publisher.NewInstallerRunner(env.logger, env.ds, env.publisherConfig()).RunInstaller(installerConfig)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ami.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&installerConfig.SourceImageID, "source-ami", "", "ID of the AMI the installer boots from")
	cmd.Flags().StringVar(&payloadPath, "payload", "", "Path to the installer user data")
	cmd.Flags().Int64Var(&installerConfig.DiskSizeGB, "disk-size", 0, "Root disk size in GB, defaults to installer.disk_size_gb")
	cmd.Flags().StringVar(&installerConfig.InstanceType, "instance-type", "", "Instance type, defaults to installer.instance_type")
	cmd.Flags().StringVar(&installerConfig.Name, "name", "", "Name of the resulting AMI, generated when empty")
	_ = cmd.MarkFlagRequired("source-ami")
	_ = cmd.MarkFlagRequired("payload")

	return cmd
}
