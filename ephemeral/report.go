package ephemeral

import (
	"fmt"

	"ebs-image-builder/collection"
)

const (
	StepRemoveKeyFile       = "remove-key-file"
	StepDeleteKeyPair       = "delete-key-pair"
	StepTerminateInstance   = "terminate-instance"
	StepDeleteSecurityGroup = "delete-security-group"
)

// Step records one teardown action in the order it was attempted
type Step struct {
	Name     string
	Resource string
	Err      error
}

type Report struct {
	Steps []Step
}

func (r Report) Names() []string {
	names := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		names = append(names, s.Name)
	}
	return names
}

func (r Report) Failed() []Step {
	var failed []Step
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Err combines the errors of every failed step, or returns nil
func (r Report) Err() error {
	errs := collection.Error{}
	for _, s := range r.Failed() {
		errs.Add(fmt.Errorf("%s %s: %w", s.Name, s.Resource, s.Err))
	}
	return errs.Error()
}
