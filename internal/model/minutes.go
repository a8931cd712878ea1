package model

import (
	"errors"
	"fmt"
)

// ErrDuplicateLabel is returned when a GeneralInfo label is added twice.
var ErrDuplicateLabel = errors.New("duplicate general info label")

// Field is a single label/value row of the general information block.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// GeneralInfo is an ordered set of label/value pairs. Order is display order.
type GeneralInfo struct {
	fields []Field
}

// Add appends a label/value pair. Labels must be unique.
func (g *GeneralInfo) Add(label, value string) error {
	for _, f := range g.fields {
		if f.Label == label {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
	}
	g.fields = append(g.fields, Field{Label: label, Value: value})
	return nil
}

// Fields returns a copy of the entries in insertion order.
func (g GeneralInfo) Fields() []Field {
	out := make([]Field, len(g.fields))
	copy(out, g.fields)
	return out
}

// Len returns the number of entries.
func (g GeneralInfo) Len() int { return len(g.fields) }

// Participant is one attendee of the meeting.
type Participant struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

// Agreement is an action item agreed during the meeting.
// StartDate and EndDate are already formatted as dd/mm/yy.
type Agreement struct {
	Description string   `json:"description"`
	Responsible string   `json:"responsible"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Progress    Progress `json:"progress"`
}

// Minutes is the normalized input of the document builder.
type Minutes struct {
	General      GeneralInfo
	Participants []Participant
	Agreements   []Agreement
}
