package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"go.uber.org/zap"
)

// SettingsService owns the persisted PDF settings. Every change is a
// read-modify-write on the store, serialized by mu.
type SettingsService struct {
	store     pdfsettings.Store
	key       string
	logger    *zap.Logger
	mu        sync.Mutex
	listeners []func(pdfsettings.PdfSettings)
}

func NewSettingsService(store pdfsettings.Store, key string, logger *zap.Logger) *SettingsService {
	if key == "" {
		key = pdfsettings.DefaultKey
	}
	return &SettingsService{store: store, key: key, logger: logger}
}

// OnChange registers fn to be called with the new settings after every save
func (s *SettingsService) OnChange(fn func(pdfsettings.PdfSettings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Get returns the current settings, falling back to defaults
func (s *SettingsService) Get(ctx context.Context) pdfsettings.PdfSettings {
	return pdfsettings.Load(ctx, s.store, s.key, s.logger)
}

// Patch replaces the field at a dotted path with a JSON value
func (s *SettingsService) Patch(ctx context.Context, path string, value json.RawMessage) (pdfsettings.PdfSettings, error) {
	return s.modify(ctx, "patch", func(cur pdfsettings.PdfSettings) (pdfsettings.PdfSettings, error) {
		next, err := pdfsettings.Update(cur, path, value)
		if err != nil {
			if errors.Is(err, pdfsettings.ErrUnknownPath) {
				return cur, fmt.Errorf("%w: %s", ErrUnknownSettingsPath, path)
			}
			return cur, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return next, nil
	}, zap.String("path", path))
}

func (s *SettingsService) Reset(ctx context.Context) (pdfsettings.PdfSettings, error) {
	return s.modify(ctx, "reset", func(pdfsettings.PdfSettings) (pdfsettings.PdfSettings, error) {
		return pdfsettings.Default(), nil
	})
}

func (s *SettingsService) ApplyTheme(ctx context.Context, theme string) (pdfsettings.PdfSettings, error) {
	return s.modify(ctx, "theme", func(cur pdfsettings.PdfSettings) (pdfsettings.PdfSettings, error) {
		next, err := pdfsettings.ApplyTheme(cur, theme)
		if err != nil {
			return cur, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return next, nil
	}, zap.String("theme", theme))
}

// Export returns the current settings as an indented JSON document
func (s *SettingsService) Export(ctx context.Context) ([]byte, error) {
	return pdfsettings.MarshalIndent(s.Get(ctx))
}

// Import replaces the settings with data merged over the defaults. Unlike
// Load, a malformed document is rejected rather than ignored.
func (s *SettingsService) Import(ctx context.Context, data []byte) (pdfsettings.PdfSettings, error) {
	imported, err := pdfsettings.Unmarshal(data)
	if err != nil {
		return pdfsettings.PdfSettings{}, fmt.Errorf("%w: %v", ErrInvalidSettingsImport, err)
	}
	return s.modify(ctx, "import", func(pdfsettings.PdfSettings) (pdfsettings.PdfSettings, error) {
		return imported, nil
	})
}

func (s *SettingsService) Themes() []pdfsettings.Theme {
	return pdfsettings.Themes()
}

func (s *SettingsService) modify(ctx context.Context, op string, fn func(pdfsettings.PdfSettings) (pdfsettings.PdfSettings, error), fields ...zap.Field) (pdfsettings.PdfSettings, error) {
	s.mu.Lock()
	cur := pdfsettings.Load(ctx, s.store, s.key, s.logger)
	next, err := fn(cur)
	if err == nil {
		err = pdfsettings.Save(ctx, s.store, s.key, next)
	}
	listeners := append([]func(pdfsettings.PdfSettings){}, s.listeners...)
	s.mu.Unlock()

	if err != nil {
		return cur, err
	}

	s.logger.Info("pdf settings saved", append(fields, zap.String("op", op))...)
	for _, fn := range listeners {
		fn(next)
	}
	return next, nil
}
