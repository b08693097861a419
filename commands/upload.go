package commands

import (
	"fmt"

	"ebs-image-builder/publisher"
	"ebs-image-builder/remote"

	"github.com/spf13/cobra"
)

// Upload returns the command writing a raw disk image into a snapshot and
// registering it as an AMI
func Upload(opts *globalOptions) *cobra.Command {
	var (
		imagePath      string
		arch           string
		noEphemeralMap bool
		snapshotOnly   bool
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a raw disk image and register it as an AMI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := fileExists(imagePath, "machine image"); err != nil {
				return err
			}

			env, err := loadEnvironment(cmd, opts)
			if err != nil {
				return err
			}

			uploader := publisher.NewImageUploader(env.logger, env.ds, remote.NewSSHExecutor(env.logger), remote.NewSSHStreamer(env.logger), env.publisherConfig())

			snapshot, err := uploader.Upload(imagePath)
			if err != nil {
				return fmt.Errorf("uploading %s: %w", imagePath, err)
			}

			if snapshotOnly {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), snapshot.ID)
				return err
			}

			withEphemeralMap := !noEphemeralMap && !env.config.AmiConfiguration.DisableEphemeralMap

			ami, err := publisher.NewRegistrar(env.logger, env.ds, env.publisherConfig()).RegisterSnapshot(snapshot.ID, arch, withEphemeralMap)
			if err != nil {
				return fmt.Errorf("registering snapshot %s: %w", snapshot.ID, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ami.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "Path to the raw disk image")
	cmd.Flags().StringVar(&arch, "arch", "", "Architecture of the AMI (x86_64 or i386), defaults to the configured one")
	cmd.Flags().BoolVar(&noEphemeralMap, "no-ephemeral-map", false, "Do not map the instance store devices")
	cmd.Flags().BoolVar(&snapshotOnly, "snapshot-only", false, "Print the snapshot id instead of registering an AMI")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}
