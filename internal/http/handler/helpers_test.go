package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/fieldservice-api/internal/document"
	"github.com/straye-as/fieldservice-api/internal/http/handler"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/service"
	"github.com/straye-as/fieldservice-api/internal/storage"
	"github.com/straye-as/fieldservice-api/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type handlers struct {
	db        *gorm.DB
	offers    *handler.OfferHandler
	orders    *handler.ServiceOrderHandler
	jobs      *handler.JobHandler
	dispatch  *handler.DispatchHandler
	entries   *handler.EntryHandler
	articles  *handler.ArticleHandler
	settings  *handler.SettingsHandler
	documents *handler.DocumentHandler
}

func setupHandlers(t *testing.T) *handlers {
	t.Helper()

	db := testutil.SetupTestDB(t)
	log := zap.NewNop()
	numbers := service.NewNumberSequenceService(repository.NewNumberSequenceRepository(db), log)

	offerService := service.NewOfferService(db, numbers, log)
	orderService := service.NewServiceOrderService(db, numbers, log)
	entryService := service.NewEntryService(db, log)
	settingsService := service.NewSettingsService(pdfsettings.NewMemoryStore(), pdfsettings.DefaultKey, log)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	docService := service.NewDocumentService(db, offerService, orderService, entryService, settingsService, service.DocumentPlatform{
		Storage:   store,
		Sharer:    document.NewSimulatedMailer(0, log),
		Clipboard: document.NewMemoryClipboard(),
		Printer:   document.NewSpoolPrinter(t.TempDir(), log),
	}, 10*time.Millisecond, log)
	t.Cleanup(docService.Shutdown)
	offerService.SetDelivery(docService)

	return &handlers{
		db:        db,
		offers:    handler.NewOfferHandler(offerService, log),
		orders:    handler.NewServiceOrderHandler(orderService, log),
		jobs:      handler.NewJobHandler(service.NewJobService(db, log), log),
		dispatch:  handler.NewDispatchHandler(service.NewDispatchService(db, numbers, log), log),
		entries:   handler.NewEntryHandler(entryService, log),
		articles:  handler.NewArticleHandler(service.NewArticleService(db, log), log),
		settings:  handler.NewSettingsHandler(settingsService, log),
		documents: handler.NewDocumentHandler(docService, log),
	}
}

// withChiContext adds a chi route context with the given URL parameters
func withChiContext(ctx context.Context, params map[string]string) context.Context {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

// call runs h against a request with an optional JSON body and URL params
func call(t *testing.T, h http.HandlerFunc, method, target string, body interface{}, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(withChiContext(context.Background(), params))

	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}
