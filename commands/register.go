package commands

import (
	"fmt"

	"ebs-image-builder/publisher"

	"github.com/spf13/cobra"
)

// Register returns the command turning an existing snapshot into an AMI
func Register(opts *globalOptions) *cobra.Command {
	var (
		snapshotID     string
		arch           string
		noEphemeralMap bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register an EBS snapshot as an AMI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnvironment(cmd, opts)
			if err != nil {
				return err
			}

			withEphemeralMap := !noEphemeralMap && !env.config.AmiConfiguration.DisableEphemeralMap
			ami, err := publisher.NewRegistrar(env.logger, env.ds, env.publisherConfig()).RegisterSnapshot(snapshotID, arch, withEphemeralMap)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ami.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&snapshotID, "snapshot", "", "ID of the snapshot holding the root file system")
	cmd.Flags().StringVar(&arch, "arch", "", "Architecture of the AMI (x86_64 or i386), defaults to the configured one")
	cmd.Flags().BoolVar(&noEphemeralMap, "no-ephemeral-map", false, "Do not map the instance store devices")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}
