package valueobjects

import "fmt"

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusOnHold:     true,
	StatusResolved:   true,
	StatusClosed:     true,
}

var statusTransitions = map[Status][]Status{
	StatusNew: {
		StatusInProgress,
		StatusOnHold,
		StatusClosed,
	},
	StatusInProgress: {
		StatusOnHold,
		StatusResolved,
		StatusClosed,
	},
	StatusOnHold: {
		StatusInProgress,
		StatusClosed,
	},
	StatusResolved: {
		StatusClosed,
		StatusInProgress,
	},
	StatusClosed: {
		StatusInProgress,
	},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsNew() bool {
	return s == StatusNew
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
