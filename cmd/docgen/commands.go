package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/straye-as/fieldservice-api/internal/config"
	"github.com/straye-as/fieldservice-api/internal/database"
	"github.com/straye-as/fieldservice-api/internal/document"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/logger"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

// readOffer decodes and validates an offer request and computes its totals
func readOffer(path, number string) (*domain.Offer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read offer: %w", err)
	}
	var req domain.CreateOfferRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode offer: %w", err)
	}
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("invalid offer: %w", err)
	}

	offer := &domain.Offer{
		OfferNumber: number,
		Title:       req.Title,
		ContactID:   req.ContactID,
		ContactName: req.ContactName,
		Taxes:       req.Taxes,
		Discount:    req.Discount,
		Status:      domain.OfferStatusDraft,
		Category:    req.Category,
		Source:      req.Source,
		Description: req.Description,
		Notes:       req.Notes,
		ValidUntil:  req.ValidUntil,
	}
	for i, item := range req.Items {
		offer.Items = append(offer.Items, domain.OfferItem{
			Type:         item.Type,
			ItemID:       item.ItemID,
			Name:         item.Name,
			Description:  item.Description,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Discount:     item.Discount,
			DiscountType: item.DiscountType,
			Position:     i,
		})
	}
	if err := offer.Recalculate(); err != nil {
		return nil, err
	}
	return offer, nil
}

// readSettings loads a settings file merged over the defaults
func readSettings(path string) (pdfsettings.PdfSettings, error) {
	if path == "" {
		return pdfsettings.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pdfsettings.Default(), fmt.Errorf("read settings: %w", err)
	}
	return pdfsettings.Unmarshal(data)
}

func renderOffer(c *cli.Context) error {
	offer, err := readOffer(c.String("offer"), c.String("number"))
	if err != nil {
		return err
	}
	settings, err := readSettings(c.String("settings"))
	if err != nil {
		return err
	}
	if theme := c.String("theme"); theme != "" {
		if settings, err = pdfsettings.ApplyTheme(settings, theme); err != nil {
			return err
		}
	}

	model := document.BuildOfferDocument(offer, settings, time.Now())
	data, err := document.NewPDFRenderer().Render(c.Context, model, settings)
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = model.Filename
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Wrote %s (%d bytes, total %s)\n", out, len(data),
		document.FormatCurrency(offer.TotalAmount, settings.Document.CurrencySymbol))
	return nil
}

func writeSettings(c *cli.Context, s pdfsettings.PdfSettings, out string) error {
	data, err := pdfsettings.MarshalIndent(s)
	if err != nil {
		return err
	}
	if out == "" {
		_, err = fmt.Fprintln(c.App.Writer, string(data))
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Wrote %s\n", out)
	return nil
}

func printDefaults(c *cli.Context) error {
	return writeSettings(c, pdfsettings.Default(), c.String("out"))
}

func validateSettings(c *cli.Context) error {
	s, err := readSettings(c.String("file"))
	if err != nil {
		return err
	}
	return writeSettings(c, s, "")
}

func listThemes(c *cli.Context) error {
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLABEL\tPRIMARY\tSECONDARY\tACCENT")
	for _, t := range pdfsettings.Themes() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.Name, t.Label, t.Primary, t.Secondary, t.Accent)
	}
	return w.Flush()
}

// settingsBackend is an opened persisted settings store
type settingsBackend struct {
	store pdfsettings.Store
	key   string
	log   *zap.Logger
	close func()
}

func openSettingsBackend(c *cli.Context) (*settingsBackend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	kind := c.String("store")
	if kind == "" {
		kind = cfg.Settings.Store
	}

	switch kind {
	case "redis":
		client, err := database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &settingsBackend{
			store: pdfsettings.NewRedisStore(client, "fieldservice:"),
			key:   cfg.Settings.Key,
			log:   log,
			close: func() { _ = client.Close() },
		}, nil
	case "database":
		db, err := database.NewDatabase(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return &settingsBackend{
			store: repository.NewSettingsRepository(db),
			key:   cfg.Settings.Key,
			log:   log,
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil
	default:
		return nil, errors.New("settings export and import need a persisted store (redis or database)")
	}
}

func exportSettings(c *cli.Context) error {
	backend, err := openSettingsBackend(c)
	if err != nil {
		return err
	}
	defer backend.close()

	s := pdfsettings.Load(c.Context, backend.store, backend.key, backend.log)
	return writeSettings(c, s, c.String("out"))
}

func importSettings(c *cli.Context) error {
	s, err := readSettings(c.String("file"))
	if err != nil {
		return err
	}

	backend, err := openSettingsBackend(c)
	if err != nil {
		return err
	}
	defer backend.close()

	ctx, cancel := context.WithTimeout(c.Context, 10*time.Second)
	defer cancel()
	if err := pdfsettings.Save(ctx, backend.store, backend.key, s); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Imported settings into %s\n", backend.key)
	return nil
}
