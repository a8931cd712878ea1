// Package service holds the acta use cases: render, email and the optional archive.
package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"actapi/internal/config"
	"actapi/internal/form"
	"actapi/internal/model"
	"actapi/internal/notify"
	"actapi/internal/repository"
	"actapi/internal/storage"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("acta not found")
	ErrArchiveDisabled = errors.New("acta archive is disabled")
)

const (
	// DownloadFilename is the name under which a rendered acta is served.
	DownloadFilename = "Acta_Reunion.pdf"

	contentTypePDF = "application/pdf"
	objectPrefix   = "actas"

	renderOK      = "ok"
	renderInvalid = "invalid"
	renderFailed  = "failed"
)

var tracer = otel.Tracer("actapi/internal/service")

// Renderer turns normalized minutes into PDF bytes. *document.Builder satisfies it.
type Renderer interface {
	Build(general model.GeneralInfo, participants []model.Participant, agreements []model.Agreement) ([]byte, error)
}

// Mailer delivers a PDF to a list of recipients. *notify.Notifier satisfies it.
type Mailer interface {
	Send(ctx context.Context, document []byte, subject string, recipients []string, transport config.MailConfig) error
}

// GenerateResult is a rendered acta. Acta is nil when the archive is disabled.
type GenerateResult struct {
	Acta     *model.Acta
	PDF      []byte
	Filename string
}

// SendResult reports a rendered acta and the outcome of emailing it.
// A failed email is reported through Notified and Reason, not as an error.
type SendResult struct {
	Acta        *model.Acta `json:"acta,omitempty"`
	Filename    string      `json:"filename"`
	Size        int         `json:"size"`
	Notified    bool        `json:"notified"`
	Reason      string      `json:"reason,omitempty"`
	DownloadURL string      `json:"download_url,omitempty"`
	PDF         []byte      `json:"-"`
}

// ActaListResult is the service-level DTO for paginated actas.
type ActaListResult struct {
	Items []model.Acta `json:"data"`
	Total int          `json:"total"`
}

// ActaService defines the use cases for meeting minutes.
type ActaService interface {
	// Generate normalizes the form and renders the PDF. When the archive is enabled
	// the PDF is stored and its metadata recorded; storage is rolled back if the DB insert fails.
	Generate(ctx context.Context, f model.Form) (*GenerateResult, error)

	// Send generates the acta and emails it to the configured recipients.
	Send(ctx context.Context, f model.Form) (*SendResult, error)

	// Resend emails an archived acta again.
	Resend(ctx context.Context, id string) (*SendResult, error)

	// List returns archived actas using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*ActaListResult, error)

	// Get returns a single archived acta by its ID.
	Get(ctx context.Context, id string) (*model.Acta, error)

	// DownloadURL returns a time-limited URL for the archived PDF.
	DownloadURL(ctx context.Context, id string) (string, error)

	// Delete removes an archived acta from both storage and repository.
	Delete(ctx context.Context, id string) error
}

type archive struct {
	store  storage.Storage
	repo   repository.ActaRepository
	expiry time.Duration
}

type actaService struct {
	renderer Renderer
	mailer   Mailer
	mail     config.MailConfig
	archive  *archive
	metrics  *Metrics
	log      *zap.Logger
	now      func() time.Time
}

// Option configures an ActaService.
type Option func(*actaService)

// WithArchive keeps every rendered PDF in store and its metadata in repo.
func WithArchive(store storage.Storage, repo repository.ActaRepository, presignExpiry time.Duration) Option {
	return func(s *actaService) {
		s.archive = &archive{store: store, repo: repo, expiry: presignExpiry}
	}
}

// WithMetrics records render and email outcomes.
func WithMetrics(m *Metrics) Option {
	return func(s *actaService) { s.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *actaService) { s.log = l }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *actaService) { s.now = now }
}

// NewActaService constructs a new ActaService. mail is the transport and recipient list used by Send.
func NewActaService(r Renderer, m Mailer, mail config.MailConfig, opts ...Option) ActaService {
	s := &actaService{
		renderer: r,
		mailer:   m,
		mail:     mail,
		log:      zap.NewNop(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *actaService) Generate(ctx context.Context, f model.Form) (res *GenerateResult, err error) {
	ctx, span := tracer.Start(ctx, "ActaService.Generate")
	defer func() { endSpan(span, err) }()

	return s.generate(ctx, f, model.NotifySkipped)
}

func (s *actaService) generate(ctx context.Context, f model.Form, status string) (*GenerateResult, error) {
	minutes, err := form.Normalize(f)
	if err != nil {
		s.metrics.observeRender(renderInvalid)
		return nil, err
	}

	pdf, err := s.renderer.Build(minutes.General, minutes.Participants, minutes.Agreements)
	if err != nil {
		s.metrics.observeRender(renderFailed)
		s.log.Error("acta render failed", zap.Error(err))
		return nil, fmt.Errorf("render acta: %w", err)
	}
	s.metrics.observeRender(renderOK)
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("acta.size", len(pdf)),
		attribute.Int("acta.participants", len(minutes.Participants)),
		attribute.Int("acta.agreements", len(minutes.Agreements)),
	)

	res := &GenerateResult{PDF: pdf, Filename: DownloadFilename}
	if s.archive == nil {
		return res, nil
	}
	acta, err := s.store(ctx, pdf, status)
	if err != nil {
		return nil, err
	}
	res.Acta = acta
	return res, nil
}

// store uploads the PDF, then saves its metadata. The object is deleted again if the DB insert fails.
func (s *actaService) store(ctx context.Context, pdf []byte, status string) (*model.Acta, error) {
	id := uuid.NewString()
	key := path.Join(objectPrefix, id+".pdf")
	sum := sha256.Sum256(pdf)
	digest := hex.EncodeToString(sum[:])

	info, err := s.archive.store.Put(ctx, key, bytes.NewReader(pdf), storage.PutObjectOptions{
		Size:        int64(len(pdf)),
		ContentType: contentTypePDF,
		Metadata:    map[string]string{"sha256": digest},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	acta := &model.Acta{
		ID:           id,
		Filename:     DownloadFilename,
		StoragePath:  info.Key,
		Size:         int64(len(pdf)),
		SHA256:       digest,
		ContentType:  contentTypePDF,
		NotifyStatus: status,
		CreatedAt:    s.now().UTC(),
	}
	stored, err := s.archive.repo.Create(ctx, acta)
	if err != nil {
		if delErr := s.archive.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	s.log.Info("acta archived", zap.String("acta_id", stored.ID), zap.Int64("size", stored.Size))
	return stored, nil
}

func (s *actaService) Send(ctx context.Context, f model.Form) (res *SendResult, err error) {
	ctx, span := tracer.Start(ctx, "ActaService.Send")
	defer func() { endSpan(span, err) }()

	gen, err := s.generate(ctx, f, model.NotifyPending)
	if err != nil {
		return nil, err
	}
	return s.deliver(ctx, gen.Acta, gen.PDF), nil
}

func (s *actaService) Resend(ctx context.Context, id string) (res *SendResult, err error) {
	ctx, span := tracer.Start(ctx, "ActaService.Resend", trace.WithAttributes(attribute.String("acta.id", id)))
	defer func() { endSpan(span, err) }()

	acta, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	rc, _, err := s.archive.store.Get(ctx, acta.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("read storage: %w", err)
	}
	defer rc.Close()

	pdf, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read storage: %w", err)
	}
	return s.deliver(ctx, acta, pdf), nil
}

// deliver makes one email attempt and records its outcome on the archived acta, if any.
func (s *actaService) deliver(ctx context.Context, acta *model.Acta, pdf []byte) *SendResult {
	res := &SendResult{Acta: acta, Filename: DownloadFilename, Size: len(pdf), PDF: pdf}

	status := model.NotifySent
	if err := s.mailer.Send(ctx, pdf, s.mail.Subject, s.mail.Recipients, s.mail); err != nil {
		status = model.NotifyFailed
		res.Reason = reason(err)
		s.log.Warn("acta not emailed", zap.String("reason", res.Reason))
	} else {
		res.Notified = true
	}
	s.metrics.observeNotify(status)

	if acta == nil {
		return res
	}

	at := s.now().UTC()
	n := repository.Notification{Status: status, Reason: res.Reason, At: at}
	if err := s.archive.repo.UpdateNotification(ctx, acta.ID, n); err != nil {
		s.log.Warn("notification status not saved", zap.String("acta_id", acta.ID), zap.Error(err))
	} else {
		acta.NotifyStatus = status
		acta.NotifyReason = res.Reason
		acta.NotifiedAt = &at
	}

	url, err := s.archive.store.PresignGet(ctx, acta.StoragePath, acta.Filename, s.archive.expiry)
	if err != nil {
		s.log.Warn("presign failed", zap.String("acta_id", acta.ID), zap.Error(err))
		return res
	}
	res.DownloadURL = url
	return res
}

func reason(err error) string {
	var ne *notify.NotifyError
	if errors.As(err, &ne) {
		return ne.Reason
	}
	return err.Error()
}

// List returns paginated actas without exposing repository types.
func (s *actaService) List(ctx context.Context, limit, offset int) (*ActaListResult, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.archive.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ActaListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *actaService) Get(ctx context.Context, id string) (*model.Acta, error) {
	return s.find(ctx, id)
}

func (s *actaService) find(ctx context.Context, id string) (*model.Acta, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	acta, err := s.archive.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return acta, nil
}

func (s *actaService) DownloadURL(ctx context.Context, id string) (string, error) {
	acta, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	url, err := s.archive.store.PresignGet(ctx, acta.StoragePath, acta.Filename, s.archive.expiry)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}

// Delete removes the stored PDF first, then its record.
func (s *actaService) Delete(ctx context.Context, id string) error {
	acta, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	// Keep the row if storage fails so the object is not orphaned.
	if err := s.archive.store.Delete(ctx, acta.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.archive.repo.Delete(ctx, id)
}
