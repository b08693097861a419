package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"ebs-image-builder/manifest"
	"ebs-image-builder/publisher"
	"ebs-image-builder/remote"
	"ebs-image-builder/suite"

	"github.com/spf13/cobra"
)

// Test returns the command running a suite of installer tests in parallel and
// printing a YAML report. It fails when any test failed.
func Test(opts *globalOptions) *cobra.Command {
	var (
		suitePath   string
		seedImageID string
		seedImage   string
		testCase    string
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run installer tests in parallel on a seed AMI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tests, err := readSuite(suitePath, testCase)
			if err != nil {
				return err
			}

			if seedImage != "" {
				if err := fileExists(seedImage, "seed image"); err != nil {
					return err
				}
			}

			env, err := loadEnvironment(cmd, opts)
			if err != nil {
				return err
			}

			if seedImage != "" {
				uploader := publisher.NewImageUploader(env.logger, env.ds, remote.NewSSHExecutor(env.logger), remote.NewSSHStreamer(env.logger), env.publisherConfig())
				seed, err := uploader.UploadAndRegister(seedImage)
				if err != nil {
					return fmt.Errorf("creating seed image from %s: %w", seedImage, err)
				}
				seedImageID = seed.ID
			}

			installer := publisher.NewInstallerRunner(env.logger, env.ds, env.publisherConfig())
			summary, err := suite.NewRunner(env.logger, installer, env.config.Installer.MaxParallel).Run(seedImageID, tests)
			if err != nil {
				return err
			}

			if err := summary.Report(seedImageID).Write(cmd.OutOrStdout()); err != nil {
				return err
			}

			if summary.ExitStatus() != 0 {
				return fmt.Errorf("%d of %d tests failed", summary.Failed, len(summary.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&suitePath, "suite", "", "Path to the YAML test manifest")
	cmd.Flags().StringVar(&seedImageID, "seed-ami", "", "ID of the AMI every test boots from")
	cmd.Flags().StringVar(&seedImage, "image", "", "Raw disk image to upload and register as the seed AMI")
	cmd.Flags().StringVar(&testCase, "test-case", manifest.AllTests, "Name of the single test to run")
	_ = cmd.MarkFlagRequired("suite")
	cmd.MarkFlagsMutuallyExclusive("seed-ami", "image")
	cmd.MarkFlagsOneRequired("seed-ami", "image")

	return cmd
}

func readSuite(path string, testCase string) ([]manifest.TestCase, error) {
	suiteFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening test manifest: %w", err)
	}
	defer func() {
		_ = suiteFile.Close()
	}()

	m, err := manifest.NewFromReader(suiteFile)
	if err != nil {
		return nil, fmt.Errorf("reading test manifest %s: %w", path, err)
	}

	tests, err := m.Select(testCase)
	if err != nil {
		return nil, err
	}

	selected := &manifest.Manifest{Tests: tests}
	if err := selected.LoadPayloads(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return selected.Tests, nil
}
