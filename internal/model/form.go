package model

// Form is the raw meeting-minutes input as submitted by a client (HTTP JSON or CLI YAML).
// Dates use the ISO layout 2006-01-02 and times use 15:04.
// Entries with an empty name/description are allowed here and dropped during normalization.
type Form struct {
	ID           string            `json:"id" yaml:"id"`
	Number       string            `json:"number" yaml:"number"`
	Date         string            `json:"date" yaml:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime    string            `json:"start_time" yaml:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime      string            `json:"end_time" yaml:"end_time" validate:"omitempty,datetime=15:04"`
	Location     string            `json:"location" yaml:"location"`
	Client       string            `json:"client" yaml:"client"`
	Project      string            `json:"project" yaml:"project"`
	Objective    string            `json:"objective" yaml:"objective"`
	Participants []ParticipantForm `json:"participants" yaml:"participants" validate:"dive"`
	Agreements   []AgreementForm   `json:"agreements" yaml:"agreements" validate:"dive"`
}

// ParticipantForm is one participant entry of a Form.
type ParticipantForm struct {
	Name    string `json:"name" yaml:"name"`
	Company string `json:"company" yaml:"company"`
	Role    string `json:"role" yaml:"role"`
}

// AgreementForm is one agreement entry of a Form.
type AgreementForm struct {
	Description string `json:"description" yaml:"description"`
	Responsible string `json:"responsible" yaml:"responsible"`
	StartDate   string `json:"start_date" yaml:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" yaml:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Progress    string `json:"progress" yaml:"progress" validate:"omitempty,oneof=0% 25% 50% 75% 100%"`
}
