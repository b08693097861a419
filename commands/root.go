// Package commands defines the ebs-image-builder command tree.
package commands

import (
	"github.com/spf13/cobra"
)

type globalOptions struct {
	configPath string
	debug      bool
}

// Root returns the root command. Subcommands print the identifier they
// produce on standard output and log to standard error.
func Root() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "ebs-image-builder",
		Short: "Build EBS backed AMIs from raw disk images and installer runs",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// flags are valid by now, so failures are not usage errors
			cmd.SilenceUsage = true
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the JSON configuration file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log at debug level")
	_ = cmd.MarkPersistentFlagRequired("config")

	cmd.AddCommand(Upload(opts))
	cmd.AddCommand(Register(opts))
	cmd.AddCommand(Install(opts))
	cmd.AddCommand(Test(opts))

	return cmd
}
