package poller

import "errors"

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeTimeout
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "fatal"
	}
}

// OutcomeOf classifies the result of a Poll. Errors which did not come from a
// timeout are fatal.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}

	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		return OutcomeTimeout
	}

	return OutcomeFatal
}
