package transfer

import "fmt"

// Status is the machine-readable lifecycle state of a transfer. Display
// labels and localization are a presentation concern and never enter the
// domain.
type Status string

const (
	// StatusPending is the initial state of every transfer.
	StatusPending Status = "pending"
	// StatusProcessing marks a transfer picked up by the destination branch.
	StatusProcessing Status = "processing"
	// StatusCompleted is the terminal success state; the funds were handed
	// over to the receiver.
	StatusCompleted Status = "completed"
	// StatusCancelled is the terminal state for transfers withdrawn by the
	// sender or the originating branch.
	StatusCancelled Status = "cancelled"
	// StatusRejected is the terminal state for transfers refused by the
	// destination branch.
	StatusRejected Status = "rejected"
)

// successors enumerates the allowed transitions. Terminal states have no
// entry and therefore no successors.
var successors = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCompleted, StatusCancelled, StatusRejected},
	StatusProcessing: {StatusCompleted, StatusCancelled, StatusRejected},
}

// ParseStatus converts a wire string into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is an allowed successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range successors[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }
