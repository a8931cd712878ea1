package document

import (
	"errors"
	"fmt"
)

// Color is an RGB triple, each channel in 0..255.
type Color struct {
	R, G, B int
}

func (c Color) valid() bool {
	return inRange(c.R) && inRange(c.G) && inRange(c.B)
}

func inRange(v int) bool { return v >= 0 && v <= 255 }

var (
	Black      = Color{0, 0, 0}
	White      = Color{255, 255, 255}
	Grey       = Color{128, 128, 128}
	LightGrey  = Color{211, 211, 211}
	WhiteSmoke = Color{245, 245, 245}
	Beige      = Color{245, 245, 220}
)

// CellStyle describes how the cells of one row are painted.
type CellStyle struct {
	Fill     Color
	Text     Color
	Bold     bool
	FontSize float64 // points
}

// TableStyle is the declarative look of a table, applied uniformly to every row.
type TableStyle struct {
	// Columns holds the relative width of each column. They are scaled to the page content width.
	Columns []float64
	Header  CellStyle
	Body    CellStyle
	// Alternate, when set, paints every second body row (2nd, 4th, ...).
	Alternate *CellStyle
	Grid      Color
	// HeaderPadding is extra space (mm) below the header text.
	HeaderPadding float64
}

// BodyStyle returns the style of the i-th (0-based) body row.
func (s TableStyle) BodyStyle(i int) CellStyle {
	if s.Alternate != nil && i%2 == 1 {
		return *s.Alternate
	}
	return s.Body
}

// Validate checks that the descriptor can be rendered.
func (s TableStyle) Validate() error {
	if len(s.Columns) == 0 {
		return errors.New("no columns")
	}
	for i, c := range s.Columns {
		if c <= 0 {
			return fmt.Errorf("column %d: width must be positive", i)
		}
	}
	if s.HeaderPadding < 0 {
		return errors.New("negative header padding")
	}
	if !s.Grid.valid() {
		return fmt.Errorf("grid color %v out of range", s.Grid)
	}
	cells := map[string]CellStyle{"header": s.Header, "body": s.Body}
	if s.Alternate != nil {
		cells["alternate"] = *s.Alternate
	}
	for name, c := range cells {
		if err := c.validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (c CellStyle) validate() error {
	if c.FontSize <= 0 {
		return errors.New("font size must be positive")
	}
	if !c.Fill.valid() || !c.Text.valid() {
		return errors.New("color out of range")
	}
	return nil
}

// Table styles of the three acta tables.
var (
	GeneralStyle = TableStyle{
		Columns:       []float64{2, 4},
		Header:        CellStyle{Fill: Grey, Text: WhiteSmoke, Bold: true, FontSize: 10},
		Body:          CellStyle{Fill: Beige, Text: Black, FontSize: 10},
		Grid:          Black,
		HeaderPadding: 4,
	}

	ParticipantsStyle = TableStyle{
		Columns: []float64{0.5, 2.5, 1.5, 2},
		Header:  CellStyle{Fill: Grey, Text: WhiteSmoke, Bold: true, FontSize: 10},
		Body:    CellStyle{Fill: White, Text: Black, FontSize: 10},
		Grid:    Black,
	}

	AgreementsStyle = TableStyle{
		Columns:   []float64{0.5, 3, 1.5, 1, 1, 1},
		Header:    CellStyle{Fill: Grey, Text: WhiteSmoke, Bold: true, FontSize: 9},
		Body:      CellStyle{Fill: White, Text: Black, FontSize: 9},
		Alternate: &CellStyle{Fill: LightGrey, Text: Black, FontSize: 9},
		Grid:      Black,
	}
)
