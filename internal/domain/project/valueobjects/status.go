package valueobjects

import "fmt"

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var validStatuses = map[Status]bool{
	StatusNotStarted: true,
	StatusInProgress: true,
	StatusOnHold:     true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

var statusTransitions = map[Status][]Status{
	StatusNotStarted: {
		StatusInProgress,
		StatusCancelled,
	},
	StatusInProgress: {
		StatusOnHold,
		StatusCompleted,
		StatusCancelled,
	},
	StatusOnHold: {
		StatusInProgress,
		StatusCancelled,
	},
	// completed and cancelled are terminal
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid project status: %s", s)
	}
	return status, nil
}
