package document

import (
	"fmt"
	"strconv"

	"actapi/internal/model"
)

// Fixed texts of the acta.
const (
	Title               = "Acta de Reunión"
	ParticipantsHeading = "2. Participantes"
	AgreementsHeading   = "3. Acuerdos"
)

var (
	ParticipantsHeader = []string{"#", "Nombre y Apellido", "Empresa", "Rol"}
	AgreementsHeader   = []string{"#", "Acuerdo", "Responsable", "Fecha Inicio", "Fecha Final", "Avance"}
)

// Layout is the engine-independent description of an acta document.
type Layout struct {
	Title    string
	Sections []Section
}

// Section is an optional heading followed by a table.
type Section struct {
	Heading string
	Table   Table
}

// Table holds the cell texts of a table. Header may be empty.
type Table struct {
	Header []string
	Rows   [][]string
	Style  TableStyle
}

// Validate checks the style and that every row matches the column count.
func (t Table) Validate() error {
	if err := t.Style.Validate(); err != nil {
		return err
	}
	n := len(t.Style.Columns)
	if len(t.Header) > 0 && len(t.Header) != n {
		return fmt.Errorf("header has %d cells, style has %d columns", len(t.Header), n)
	}
	for i, r := range t.Rows {
		if len(r) != n {
			return fmt.Errorf("row %d has %d cells, style has %d columns", i+1, len(r), n)
		}
	}
	return nil
}

// Compose lays out the acta. The first general entry is the table header row.
// Participants and agreements are numbered 1..N in input order; inputs are not modified.
func Compose(general model.GeneralInfo, participants []model.Participant, agreements []model.Agreement) Layout {
	gt := Table{Style: GeneralStyle}
	for i, f := range general.Fields() {
		row := []string{f.Label, f.Value}
		if i == 0 {
			gt.Header = row
			continue
		}
		gt.Rows = append(gt.Rows, row)
	}

	pt := Table{
		Header: ParticipantsHeader,
		Rows:   make([][]string, 0, len(participants)),
		Style:  ParticipantsStyle,
	}
	for i, p := range participants {
		pt.Rows = append(pt.Rows, []string{strconv.Itoa(i + 1), p.Name, p.Company, p.Role})
	}

	at := Table{
		Header: AgreementsHeader,
		Rows:   make([][]string, 0, len(agreements)),
		Style:  AgreementsStyle,
	}
	for i, a := range agreements {
		at.Rows = append(at.Rows, []string{
			strconv.Itoa(i + 1), a.Description, a.Responsible, a.StartDate, a.EndDate, a.Progress.String(),
		})
	}

	return Layout{
		Title: Title,
		Sections: []Section{
			{Table: gt},
			{Heading: ParticipantsHeading, Table: pt},
			{Heading: AgreementsHeading, Table: at},
		},
	}
}
