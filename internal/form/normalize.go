// Package form turns raw meeting-minutes input into the clean records consumed by the
// document builder. Empty participant/agreement entries are dropped here so the builder
// only ever sees rows it must render.
package form

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"actapi/internal/model"
)

// Labels of the general information block, in display order.
const (
	LabelID        = "ID"
	LabelNumber    = "Número de acta"
	LabelDate      = "Fecha de la reunión"
	LabelStartTime = "Hora de Inicio"
	LabelEndTime   = "Hora de finalización"
	LabelLocation  = "Lugar de la reunión"
	LabelClient    = "Cliente"
	LabelProject   = "Nombre del proyecto"
	LabelObjective = "Objetivo de la reunión"
)

const (
	isoDate       = "2006-01-02"
	meetingDate   = "02/01/2006"
	agreementDate = "02/01/06"
	clockTime     = "15:04"
	defaultAvance = model.Progress0
)

// ValidationError lists the form fields that failed format checks.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid form: " + strings.Join(e.Fields, ", ")
}

var validate = validator.New()

// Normalize validates f and produces the records handed to the document builder.
// Values are trimmed and blank entries dropped before validation, so a discarded entry
// never fails the form. f is not modified.
func Normalize(f model.Form) (*model.Minutes, error) {
	c := clean(f)
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return nil, &ValidationError{Fields: fields}
		}
		return nil, err
	}

	general, err := generalInfo(c)
	if err != nil {
		return nil, err
	}

	m := &model.Minutes{
		General:      general,
		Participants: make([]model.Participant, 0, len(c.Participants)),
		Agreements:   make([]model.Agreement, 0, len(c.Agreements)),
	}

	for _, p := range c.Participants {
		m.Participants = append(m.Participants, model.Participant{
			Name:    p.Name,
			Company: p.Company,
			Role:    p.Role,
		})
	}

	for _, a := range c.Agreements {
		progress := defaultAvance
		if a.Progress != "" {
			progress, err = model.ParseProgress(a.Progress)
			if err != nil {
				return nil, &ValidationError{Fields: []string{"Form.Agreements.Progress (oneof)"}}
			}
		}
		m.Agreements = append(m.Agreements, model.Agreement{
			Description: a.Description,
			Responsible: a.Responsible,
			StartDate:   reformat(a.StartDate, isoDate, agreementDate),
			EndDate:     reformat(a.EndDate, isoDate, agreementDate),
			Progress:    progress,
		})
	}

	return m, nil
}

// clean returns a trimmed copy of f without participants lacking a name or
// agreements lacking a description.
func clean(f model.Form) model.Form {
	c := model.Form{
		ID:        strings.TrimSpace(f.ID),
		Number:    strings.TrimSpace(f.Number),
		Date:      strings.TrimSpace(f.Date),
		StartTime: strings.TrimSpace(f.StartTime),
		EndTime:   strings.TrimSpace(f.EndTime),
		Location:  strings.TrimSpace(f.Location),
		Client:    strings.TrimSpace(f.Client),
		Project:   strings.TrimSpace(f.Project),
		Objective: strings.TrimSpace(f.Objective),
	}
	for _, p := range f.Participants {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		c.Participants = append(c.Participants, model.ParticipantForm{
			Name:    name,
			Company: strings.TrimSpace(p.Company),
			Role:    strings.TrimSpace(p.Role),
		})
	}
	for _, a := range f.Agreements {
		desc := strings.TrimSpace(a.Description)
		if desc == "" {
			continue
		}
		c.Agreements = append(c.Agreements, model.AgreementForm{
			Description: desc,
			Responsible: strings.TrimSpace(a.Responsible),
			StartDate:   strings.TrimSpace(a.StartDate),
			EndDate:     strings.TrimSpace(a.EndDate),
			Progress:    strings.TrimSpace(a.Progress),
		})
	}
	return c
}

func generalInfo(f model.Form) (model.GeneralInfo, error) {
	var g model.GeneralInfo
	rows := []model.Field{
		{Label: LabelID, Value: f.ID},
		{Label: LabelNumber, Value: f.Number},
		{Label: LabelDate, Value: reformat(f.Date, isoDate, meetingDate)},
		{Label: LabelStartTime, Value: reformat(f.StartTime, clockTime, clockTime)},
		{Label: LabelEndTime, Value: reformat(f.EndTime, clockTime, clockTime)},
		{Label: LabelLocation, Value: f.Location},
		{Label: LabelClient, Value: f.Client},
		{Label: LabelProject, Value: f.Project},
		{Label: LabelObjective, Value: f.Objective},
	}
	for _, r := range rows {
		if err := g.Add(r.Label, r.Value); err != nil {
			return model.GeneralInfo{}, err
		}
	}
	return g, nil
}

// reformat re-lays a validated value; empty input stays empty.
func reformat(v, from, to string) string {
	if v == "" {
		return ""
	}
	t, err := time.Parse(from, v)
	if err != nil {
		return v
	}
	return t.Format(to)
}
