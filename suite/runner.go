package suite

import (
	"errors"
	"fmt"
	"time"

	"ebs-image-builder/collection"
	"ebs-image-builder/manifest"
	"ebs-image-builder/publisher"
	"ebs-image-builder/resources"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// ErrDuplicateTest is returned for a suite in which two tests share a name
var ErrDuplicateTest = errors.New("duplicate test name")

//counterfeiter:generate . Installer
type Installer interface {
	RunInstaller(publisher.InstallerConfig) (resources.Ami, error)
}

// Summary is the reduced outcome of a suite run, with results ordered by test name
type Summary struct {
	Results []collection.Result
	Passed  int
	Failed  int
}

// ExitStatus is non-zero exactly when a test failed
func (s Summary) ExitStatus() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

func (s Summary) Report(seedImageID string) manifest.Report {
	return manifest.Report{
		SeedImageID: seedImageID,
		Passed:      s.Passed,
		Failed:      s.Failed,
		Results:     s.Results,
	}
}

// Runner runs every test case of a suite as its own installer run on the same seed image
type Runner struct {
	logger      *clog.Logger
	installer   Installer
	maxParallel int
}

// NewRunner returns a Runner starting at most maxParallel installer runs at
// once; zero starts all of them together
func NewRunner(logger *clog.Logger, installer Installer, maxParallel int) *Runner {
	return &Runner{
		logger:      logger.With("suite", "Runner"),
		installer:   installer,
		maxParallel: maxParallel,
	}
}

// Run blocks until every test finished. Results are keyed by test name, so
// a suite with duplicate names is rejected before any installer runs.
func (r *Runner) Run(seedImageID string, tests []manifest.TestCase) (Summary, error) {
	seen := make(map[string]bool, len(tests))
	for _, test := range tests {
		if seen[test.Name] {
			return Summary{}, fmt.Errorf("%w: %q", ErrDuplicateTest, test.Name)
		}
		seen[test.Name] = true
	}

	createStartTime := time.Now()
	defer func(startTime time.Time) {
		r.logger.Infof("completed Run() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	results := &collection.Results{}

	g := errgroup.Group{}
	if r.maxParallel > 0 {
		g.SetLimit(r.maxParallel)
	}

	for _, test := range tests {
		g.Go(func() error {
			results.Add(r.runTest(seedImageID, test))
			return nil
		})
	}
	_ = g.Wait()

	summary := Summary{Results: results.GetAll()}
	for _, result := range summary.Results {
		if result.Failed() {
			summary.Failed++
		} else {
			summary.Passed++
		}
	}

	r.logger.Infof("%d tests passed, %d failed", summary.Passed, summary.Failed)
	return summary, nil
}

func (r *Runner) runTest(seedImageID string, test manifest.TestCase) (result collection.Result) {
	logger := r.logger.With("test", test.Name)

	defer func() {
		if p := recover(); p != nil {
			logger.Errorf("test %s panicked: %v", test.Name, p)
			result = collection.Failed(test.Name, fmt.Errorf("panic: %v", p))
		}
	}()

	logger.Infof("starting test %s on %s", test.Name, seedImageID)
	ami, err := r.installer.RunInstaller(publisher.InstallerConfig{
		SourceImageID: seedImageID,
		Payload:       test.PayloadBytes,
		DiskSizeGB:    test.DiskSizeGB,
		InstanceType:  test.InstanceType,
		Description:   fmt.Sprintf("Installer test %s on top of %s", test.Name, seedImageID),
	})
	if err != nil {
		logger.Warnf("test %s failed: %s", test.Name, err)
		return collection.Failed(test.Name, err)
	}

	logger.Infof("test %s produced %s", test.Name, ami.ID)
	return collection.Succeeded(test.Name, ami.ID)
}
