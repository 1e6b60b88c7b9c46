package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/document"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/mapper"
	"go.uber.org/zap"
)

const previewRenderTimeout = 30 * time.Second

var errPreviewClosed = errors.New("preview session closed")

type previewSession struct {
	id         uuid.UUID
	entityType domain.EntityType
	entityID   uuid.UUID
	debouncer  *document.Debouncer
	gen        document.Generation

	mu         sync.Mutex
	closed     bool
	rendered   *Rendered
	version    int
	renderedAt time.Time
	lastErr    error
}

// previewRegistry keeps the open live preview sessions. Re-renders are
// debounced per session and a render that finishes after a newer one was
// started, or after the session closed, is dropped.
type previewRegistry struct {
	svc      *DocumentService
	debounce time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*previewSession
}

func newPreviewRegistry(svc *DocumentService, debounce time.Duration) *previewRegistry {
	return &previewRegistry{
		svc:      svc,
		debounce: debounce,
		sessions: make(map[uuid.UUID]*previewSession),
	}
}

func (r *previewRegistry) open(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (*domain.PreviewDTO, error) {
	session := &previewSession{
		id:         uuid.New(),
		entityType: entityType,
		entityID:   entityID,
		debouncer:  document.NewDebouncer(r.debounce),
	}

	// first render runs inline so a missing entity fails the open call
	if err := r.render(ctx, session); err != nil {
		session.debouncer.Stop()
		return nil, err
	}

	r.mu.Lock()
	r.sessions[session.id] = session
	r.mu.Unlock()

	r.svc.logger.Debug("preview opened",
		zap.String("sessionID", session.id.String()),
		zap.String("entityType", string(entityType)),
		zap.String("entityID", entityID.String()))

	dto := session.dto()
	return &dto, nil
}

func (r *previewRegistry) get(id uuid.UUID) (*previewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrPreviewNotFound
	}
	return session, nil
}

func (r *previewRegistry) refresh(id uuid.UUID) (*domain.PreviewDTO, error) {
	session, err := r.get(id)
	if err != nil {
		return nil, err
	}
	r.schedule(session)
	dto := session.dto()
	return &dto, nil
}

func (r *previewRegistry) refreshAll() {
	r.mu.Lock()
	sessions := make([]*previewSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.Unlock()

	for _, s := range sessions {
		r.schedule(s)
	}
}

func (r *previewRegistry) schedule(session *previewSession) {
	session.debouncer.Trigger(func() {
		ctx, cancel := context.WithTimeout(context.Background(), previewRenderTimeout)
		defer cancel()
		if err := r.render(ctx, session); err != nil && !errors.Is(err, errPreviewClosed) {
			r.svc.logger.Warn("preview render failed",
				zap.String("sessionID", session.id.String()),
				zap.Error(err))
		}
	})
}

// render takes a generation token before rendering and only applies the
// result if the token is still current afterwards.
func (r *previewRegistry) render(ctx context.Context, session *previewSession) error {
	token := session.gen.Next()
	rendered, err := r.svc.Render(ctx, session.entityType, session.entityID)

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.closed {
		return errPreviewClosed
	}
	// Checked under the lock so a newer render cannot apply between the
	// check and the write below.
	if !session.gen.IsCurrent(token) {
		r.svc.logger.Debug("stale preview render dropped", zap.String("sessionID", session.id.String()))
		return nil
	}
	session.lastErr = err
	if err != nil {
		return err
	}
	session.rendered = rendered
	session.version++
	session.renderedAt = r.svc.now()
	return nil
}

func (r *previewRegistry) status(id uuid.UUID) (*domain.PreviewDTO, error) {
	session, err := r.get(id)
	if err != nil {
		return nil, err
	}
	dto := session.dto()
	return &dto, nil
}

func (r *previewRegistry) content(id uuid.UUID) (*Rendered, int, error) {
	session, err := r.get(id)
	if err != nil {
		return nil, 0, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.rendered == nil {
		return nil, 0, ErrPreviewNotFound
	}
	return session.rendered, session.version, nil
}

func (r *previewRegistry) close(id uuid.UUID) error {
	r.mu.Lock()
	session, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrPreviewNotFound
	}
	session.shutdown()
	return nil
}

func (r *previewRegistry) closeAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[uuid.UUID]*previewSession)
	r.mu.Unlock()

	for _, s := range sessions {
		s.shutdown()
	}
}

func (s *previewSession) shutdown() {
	s.debouncer.Stop()
	s.gen.Invalidate()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *previewSession) dto() domain.PreviewDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	dto := domain.PreviewDTO{
		SessionID:  s.id,
		EntityType: s.entityType,
		EntityID:   s.entityID,
		Version:    s.version,
	}
	if s.rendered != nil {
		dto.Filename = s.rendered.Filename
		dto.RenderedAt = mapper.FormatTime(s.renderedAt)
	}
	if s.lastErr != nil {
		dto.Error = s.lastErr.Error()
	}
	return dto
}
