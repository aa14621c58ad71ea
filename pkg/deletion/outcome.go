package deletion

// Outcome is the state of the delete attempt of an open workflow.
type Outcome int

// Possible outcomes.
const (
	OutcomeIdle Outcome = iota
	OutcomePending
	OutcomeSucceeded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomePending:
		return "pending"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
