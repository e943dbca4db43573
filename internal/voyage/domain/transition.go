package domain

import "fmt"

// Reopening a completed log back to draft is deliberately permitted: the
// operator corrects finalized logs after the fact, and the original workflow
// never blocked it. The policy lives here so changing it is a one-line,
// tested decision.
const allowReopen = true

// Transition validates a requested status change for a log. hasArrival is
// whether the log will have an arrival time after the save.
func Transition(current, requested Status, hasArrival bool) (Status, error) {
	switch requested {
	case StatusDraft:
		if current == StatusCompleted && !allowReopen {
			return current, fmt.Errorf("completed log cannot be reopened as draft")
		}
		return StatusDraft, nil
	case StatusCompleted:
		if !hasArrival {
			return current, fmt.Errorf("cannot complete log without arrival time")
		}
		return StatusCompleted, nil
	default:
		return current, fmt.Errorf("unknown status %q", requested)
	}
}
