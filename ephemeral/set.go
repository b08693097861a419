package ephemeral

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"ebs-image-builder/driver"
	"ebs-image-builder/driverset"
	"ebs-image-builder/poller"
	"ebs-image-builder/resources"

	"github.com/chainguard-dev/clog"
)

type SetConfig struct {
	// TerminateWindow bounds the wait for a terminated instance
	TerminateWindow poller.Window

	// SecurityGroupWindow bounds retries of the security group deletion, which
	// EC2 rejects while the terminated instance still references the group
	SecurityGroupWindow poller.Window
}

var DefaultSetConfig = SetConfig{
	TerminateWindow:     poller.Window{Interval: 5 * time.Second, Timeout: 300 * time.Second},
	SecurityGroupWindow: poller.Window{Interval: 5 * time.Second, Timeout: 60 * time.Second},
}

// Set tracks the ephemeral resources of one run as they are acquired and
// releases whatever was acquired, in dependency order.
type Set struct {
	logger *clog.Logger
	ds     driverset.RegionDriverSet
	config SetConfig

	mutex         sync.Mutex
	released      bool
	keyFile       *KeyFile
	keyPair       *resources.KeyPair
	instance      *resources.Instance
	securityGroup *resources.SecurityGroup
}

func NewSet(logger *clog.Logger, ds driverset.RegionDriverSet, config SetConfig) *Set {
	return &Set{
		logger: logger.With("component", "ephemeral.Set"),
		ds:     ds,
		config: config,
	}
}

func (s *Set) TrackSecurityGroup(group resources.SecurityGroup) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.securityGroup = &group
}

// TrackKeyPair records a key pair and the local file holding its private key.
// keyFile may be nil when writing it failed.
func (s *Set) TrackKeyPair(keyPair resources.KeyPair, keyFile *KeyFile) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.keyPair = &keyPair
	s.keyFile = keyFile
}

func (s *Set) TrackInstance(instance resources.Instance) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.instance = &instance
}

// Release removes the key file, deletes the key pair, terminates the instance
// and waits for it to be gone, then deletes the security group. Each step is
// attempted even when an earlier one failed. Later calls do nothing.
func (s *Set) Release() Report {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	report := Report{}
	if s.released {
		s.logger.Debugf("ephemeral resources already released")
		return report
	}
	s.released = true

	if s.keyFile != nil {
		keyFile := s.keyFile
		s.keyFile = nil
		report.Steps = append(report.Steps, s.step(StepRemoveKeyFile, keyFile.Path(), keyFile.Remove()))
	}

	if s.keyPair != nil {
		keyPair := *s.keyPair
		s.keyPair = nil
		report.Steps = append(report.Steps, s.step(StepDeleteKeyPair, keyPair.Name, s.ds.KeyPairDriver().Delete(keyPair)))
	}

	if s.instance != nil {
		instance := *s.instance
		s.instance = nil
		report.Steps = append(report.Steps, s.step(StepTerminateInstance, instance.ID, s.terminate(instance)))
	}

	if s.securityGroup != nil {
		group := *s.securityGroup
		s.securityGroup = nil
		report.Steps = append(report.Steps, s.step(StepDeleteSecurityGroup, group.ID, s.deleteSecurityGroup(group)))
	}

	return report
}

func (s *Set) step(name string, resource string, err error) Step {
	if err != nil {
		s.logger.Warnf("%s %s failed: %s", name, resource, err)
	} else {
		s.logger.Infof("%s %s done", name, resource)
	}
	return Step{Name: name, Resource: resource, Err: err}
}

// terminate waits for the terminated state even when the terminate request
// failed, since the instance may already be shutting down.
func (s *Set) terminate(instance resources.Instance) error {
	instanceDriver := s.ds.InstanceDriver()

	terminateErr := instanceDriver.Terminate(instance)
	if terminateErr != nil {
		s.logger.Warnf("terminate request for %s failed, waiting for termination anyway: %s", instance.ID, terminateErr)
	}

	pollErr := poller.Poll(s.logger, poller.Config{
		Resource: instance.ID,
		Desired:  resources.InstanceStateTerminated,
		Window:   s.config.TerminateWindow,
		IsFatal:  driver.IsFatalError,
	}, func() (bool, error) {
		current, err := instanceDriver.Describe(instance)
		if err != nil {
			return false, err
		}
		return current.State == resources.InstanceStateTerminated, nil
	})

	if terminateErr != nil && pollErr != nil {
		return errors.Join(terminateErr, pollErr)
	}
	if pollErr != nil {
		return fmt.Errorf("waiting for instance %s to terminate: %w", instance.ID, pollErr)
	}
	return nil
}

func (s *Set) deleteSecurityGroup(group resources.SecurityGroup) error {
	sgDriver := s.ds.SecurityGroupDriver()
	return poller.Poll(s.logger, poller.Config{
		Resource: group.ID,
		Desired:  "deleted",
		Window:   s.config.SecurityGroupWindow,
		IsFatal:  driver.IsFatalError,
	}, func() (bool, error) {
		if err := sgDriver.Delete(group); err != nil {
			return false, err
		}
		return true, nil
	})
}
