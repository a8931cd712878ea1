// Package document renders meeting minutes into a paginated A4 PDF.
//
// Rendering is split in two steps: Compose builds an engine-free Layout (tables, row
// texts, styles) and Builder.Render paints a Layout with fpdf. Output is byte-for-byte
// reproducible for identical input.
package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"actapi/internal/model"
)

// reproducibleDate is written as the PDF creation date so output never depends on the clock.
var reproducibleDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Builder renders acta documents. A Builder holds no per-call state and is safe for
// concurrent use.
type Builder struct {
	compress bool
	created  time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithCompression toggles content stream compression (on by default).
func WithCompression(on bool) Option {
	return func(b *Builder) { b.compress = on }
}

// WithCreationDate overrides the creation date stored in the document info.
func WithCreationDate(t time.Time) Option {
	return func(b *Builder) { b.created = t }
}

// NewBuilder returns a Builder with the given options applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{compress: true, created: reproducibleDate}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build composes and renders the acta.
//
// Text is drawn with the standard Helvetica font in cp1252. Runes outside that code page
// (Ł, Ω, CJK, emoji) are written as '.'; Spanish accents, ñ and € are kept.
func (b *Builder) Build(general model.GeneralInfo, participants []model.Participant, agreements []model.Agreement) ([]byte, error) {
	return b.Render(Compose(general, participants, agreements))
}

// Render paints l into PDF bytes. On failure it returns a *RenderError and nil bytes.
func (b *Builder) Render(l Layout) (out []byte, err error) {
	for i, s := range l.Sections {
		if verr := s.Table.Validate(); verr != nil {
			return nil, &RenderError{Op: "style", Err: fmt.Errorf("section %d: %w", i+1, verr)}
		}
	}

	defer func() {
		if p := recover(); p != nil {
			out, err = nil, &RenderError{Op: "layout", Err: fmt.Errorf("engine panic: %v", p)}
		}
	}()

	pdf := fpdf.New("P", "mm", pageSize, "")
	pdf.SetCompression(b.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(b.created)
	pdf.SetModificationDate(b.created)
	pdf.SetTitle(l.Title, true)
	pdf.SetCreator("actapi", false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetCellMargin(0)
	pdf.AddPage()

	r := newRenderer(pdf)
	r.title(l.Title)
	for i, s := range l.Sections {
		if err := r.section(s); err != nil {
			return nil, &RenderError{Op: "layout", Err: fmt.Errorf("section %d: %w", i+1, err)}
		}
	}

	if pdf.Err() {
		return nil, &RenderError{Op: "layout", Err: pdf.Error()}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Op: "output", Err: err}
	}
	return buf.Bytes(), nil
}
