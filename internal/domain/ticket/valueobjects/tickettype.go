package valueobjects

import "fmt"

type TicketType string

const (
	TypeBug         TicketType = "bug"
	TypeFeature     TicketType = "feature"
	TypeTask        TicketType = "task"
	TypeEnhancement TicketType = "enhancement"
)

var validTypes = map[TicketType]bool{
	TypeBug:         true,
	TypeFeature:     true,
	TypeTask:        true,
	TypeEnhancement: true,
}

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	return validTypes[t]
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}
