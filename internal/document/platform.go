package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"go.uber.org/zap"
)

// ErrShareUnavailable means the sharer cannot deliver this payload. Callers
// fall back to copying the link to the clipboard.
var ErrShareUnavailable = errors.New("native share unavailable")

// SharePayload is what a share action hands to the platform.
type SharePayload struct {
	Title       string
	Text        string
	URL         string
	Recipient   string
	Filename    string
	ContentType string
	Data        []byte
}

type Sharer interface {
	Share(ctx context.Context, p SharePayload) error
}

type Printer interface {
	Print(ctx context.Context, filename string, data []byte) error
}

type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// ShareOutcome tells the caller which path delivered the payload
type ShareOutcome string

const (
	ShareOutcomeShared ShareOutcome = "shared"
	ShareOutcomeCopied ShareOutcome = "copied"
)

// ShareOrCopy shares p, falling back to copying its link (or text) to the
// clipboard when sharing is unavailable. Other share failures are returned
// as *domain.ExternalServiceError without trying the clipboard.
func ShareOrCopy(ctx context.Context, sharer Sharer, clip Clipboard, p SharePayload) (ShareOutcome, error) {
	if sharer != nil {
		err := sharer.Share(ctx, p)
		if err == nil {
			return ShareOutcomeShared, nil
		}
		if !errors.Is(err, ErrShareUnavailable) {
			return "", &domain.ExternalServiceError{Service: "share", Op: "share", Err: err}
		}
	}

	if clip == nil {
		return "", &domain.ExternalServiceError{Service: "clipboard", Op: "copy", Err: ErrShareUnavailable}
	}
	content := p.URL
	if content == "" {
		content = p.Text
	}
	if err := clip.Copy(ctx, content); err != nil {
		return "", &domain.ExternalServiceError{Service: "clipboard", Op: "copy", Err: err}
	}
	return ShareOutcomeCopied, nil
}

// SimulatedMailer pretends to e-mail documents after a fixed delay. Payloads
// without a recipient are reported as ErrShareUnavailable.
type SimulatedMailer struct {
	delay  time.Duration
	logger *zap.Logger

	mu   sync.Mutex
	sent []SharePayload
}

func NewSimulatedMailer(delay time.Duration, logger *zap.Logger) *SimulatedMailer {
	return &SimulatedMailer{delay: delay, logger: logger}
}

func (m *SimulatedMailer) Share(ctx context.Context, p SharePayload) error {
	if p.Recipient == "" {
		return ErrShareUnavailable
	}

	timer := time.NewTimer(m.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	m.mu.Lock()
	m.sent = append(m.sent, p)
	m.mu.Unlock()

	m.logger.Info("simulated email sent",
		zap.String("recipient", p.Recipient),
		zap.String("subject", p.Title),
		zap.String("attachment", p.Filename),
		zap.Int("size", len(p.Data)),
	)
	return nil
}

// Sent returns the payloads delivered so far.
func (m *SimulatedMailer) Sent() []SharePayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SharePayload, len(m.sent))
	copy(out, m.sent)
	return out
}

// MemoryClipboard keeps the last copied text.
type MemoryClipboard struct {
	mu   sync.Mutex
	last string
}

func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

func (c *MemoryClipboard) Copy(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = text
	return nil
}

func (c *MemoryClipboard) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// SpoolPrinter drops print jobs into a spool directory picked up by the
// print server.
type SpoolPrinter struct {
	dir    string
	logger *zap.Logger
}

func NewSpoolPrinter(dir string, logger *zap.Logger) *SpoolPrinter {
	return &SpoolPrinter{dir: dir, logger: logger}
}

func (p *SpoolPrinter) Print(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create spool dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(filename))
	path := filepath.Join(p.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write print job: %w", err)
	}

	p.logger.Info("print job spooled", zap.String("file", path), zap.Int("size", len(data)))
	return nil
}
