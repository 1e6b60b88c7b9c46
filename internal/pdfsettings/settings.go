// Package pdfsettings holds the document rendering configuration: a typed
// value with a fixed default, dotted-path updates, named color themes and a
// JSON codec that merges stored values over the defaults.
package pdfsettings

import (
	"fmt"
	"regexp"
)

// PdfSettings is a plain value. Every section is a struct value, so an
// assignment copies the whole tree.
type PdfSettings struct {
	FontFamily   string          `json:"fontFamily"`
	FontSize     FontSize        `json:"fontSize"`
	Colors       Colors          `json:"colors"`
	Margins      Margins         `json:"margins"`
	Spacing      Spacing         `json:"spacing"`
	Company      CompanyInfo     `json:"company"`
	ShowElements ShowElements    `json:"showElements"`
	Table        TableOptions    `json:"table"`
	Document     DocumentOptions `json:"document"`
	Advanced     Advanced        `json:"advanced"`
}

type FontSize struct {
	Base   float64 `json:"base"`
	Header float64 `json:"header"`
	Title  float64 `json:"title"`
	Small  float64 `json:"small"`
}

// Colors are #RRGGBB hex strings
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Border     string `json:"border"`
	Background string `json:"background"`
}

// Margins in millimetres
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

type Spacing struct {
	Section   float64 `json:"section"`
	Paragraph float64 `json:"paragraph"`
	TableRow  float64 `json:"tableRow"`
}

type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Logo    string `json:"logo"`
	TaxID   string `json:"taxId"`
}

// ShowElements toggles whole document sections. A hidden section is left
// out of the document model entirely.
type ShowElements struct {
	Header       bool `json:"header"`
	Logo         bool `json:"logo"`
	CompanyInfo  bool `json:"companyInfo"`
	CustomerInfo bool `json:"customerInfo"`
	DocumentInfo bool `json:"documentInfo"`
	ItemsTable   bool `json:"itemsTable"`
	Summary      bool `json:"summary"`
	Notes        bool `json:"notes"`
	Terms        bool `json:"terms"`
	Signature    bool `json:"signature"`
	Footer       bool `json:"footer"`
	PageNumbers  bool `json:"pageNumbers"`
}

type TableOptions struct {
	ShowItemCodes      bool   `json:"showItemCodes"`
	ShowDescriptions   bool   `json:"showDescriptions"`
	ShowQuantity       bool   `json:"showQuantity"`
	ShowUnitPrice      bool   `json:"showUnitPrice"`
	ShowDiscount       bool   `json:"showDiscount"`
	ShowItemType       bool   `json:"showItemType"`
	AlternateRowColors bool   `json:"alternateRowColors"`
	HeaderStyle        string `json:"headerStyle"`
}

type DocumentOptions struct {
	DateFormat     string `json:"dateFormat"`
	CurrencySymbol string `json:"currencySymbol"`
	Language       string `json:"language"`
	PaperSize      string `json:"paperSize"`
	Orientation    string `json:"orientation"`
	TermsText      string `json:"termsText"`
	FooterText     string `json:"footerText"`
}

type Advanced struct {
	Watermark        bool    `json:"watermark"`
	WatermarkText    string  `json:"watermarkText"`
	WatermarkOpacity float64 `json:"watermarkOpacity"`
	Compression      bool    `json:"compression"`
	ImageQuality     int     `json:"imageQuality"`
}

// Default returns the canonical default configuration.
func Default() PdfSettings {
	return PdfSettings{
		FontFamily: "helvetica",
		FontSize: FontSize{
			Base:   10,
			Header: 14,
			Title:  20,
			Small:  8,
		},
		Colors: Colors{
			Primary:    "#1E40AF",
			Secondary:  "#64748B",
			Accent:     "#0EA5E9",
			Text:       "#1F2937",
			Border:     "#E5E7EB",
			Background: "#FFFFFF",
		},
		Margins: Margins{Top: 20, Right: 15, Bottom: 20, Left: 15},
		Spacing: Spacing{Section: 8, Paragraph: 4, TableRow: 7},
		Company: CompanyInfo{Name: "Your Company"},
		ShowElements: ShowElements{
			Header:       true,
			Logo:         true,
			CompanyInfo:  true,
			CustomerInfo: true,
			DocumentInfo: true,
			ItemsTable:   true,
			Summary:      true,
			Notes:        true,
			Terms:        true,
			Signature:    false,
			Footer:       true,
			PageNumbers:  true,
		},
		Table: TableOptions{
			ShowItemCodes:      true,
			ShowDescriptions:   true,
			ShowQuantity:       true,
			ShowUnitPrice:      true,
			ShowDiscount:       true,
			ShowItemType:       false,
			AlternateRowColors: true,
			HeaderStyle:        HeaderStyleFilled,
		},
		Document: DocumentOptions{
			DateFormat:     "de-DE",
			CurrencySymbol: "€",
			Language:       "en",
			PaperSize:      PaperSizeA4,
			Orientation:    OrientationPortrait,
			TermsText:      "Payment due within 30 days of invoice date.",
			FooterText:     "Thank you for your business.",
		},
		Advanced: Advanced{
			Watermark:        false,
			WatermarkText:    "DRAFT",
			WatermarkOpacity: 0.1,
			Compression:      true,
			ImageQuality:     85,
		},
	}
}

const (
	PaperSizeA4     = "A4"
	PaperSizeLetter = "Letter"
	PaperSizeLegal  = "Legal"

	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"

	HeaderStyleFilled    = "filled"
	HeaderStyleOutlined  = "outlined"
	HeaderStyleUnderline = "underline"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks the value ranges a renderer relies on.
func (s PdfSettings) Validate() error {
	for name, size := range map[string]float64{
		"fontSize.base":   s.FontSize.Base,
		"fontSize.header": s.FontSize.Header,
		"fontSize.title":  s.FontSize.Title,
		"fontSize.small":  s.FontSize.Small,
	} {
		if size <= 0 || size > 72 {
			return fmt.Errorf("%w: %s must be between 0 and 72", ErrInvalidValue, name)
		}
	}

	for name, c := range map[string]string{
		"colors.primary":    s.Colors.Primary,
		"colors.secondary":  s.Colors.Secondary,
		"colors.accent":     s.Colors.Accent,
		"colors.text":       s.Colors.Text,
		"colors.border":     s.Colors.Border,
		"colors.background": s.Colors.Background,
	} {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("%w: %s must be a #RRGGBB color, got %q", ErrInvalidValue, name, c)
		}
	}

	for name, m := range map[string]float64{
		"margins.top":    s.Margins.Top,
		"margins.right":  s.Margins.Right,
		"margins.bottom": s.Margins.Bottom,
		"margins.left":   s.Margins.Left,
	} {
		if m < 0 || m > 100 {
			return fmt.Errorf("%w: %s must be between 0 and 100", ErrInvalidValue, name)
		}
	}

	switch s.Document.PaperSize {
	case PaperSizeA4, PaperSizeLetter, PaperSizeLegal:
	default:
		return fmt.Errorf("%w: document.paperSize %q", ErrInvalidValue, s.Document.PaperSize)
	}

	switch s.Document.Orientation {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: document.orientation %q", ErrInvalidValue, s.Document.Orientation)
	}

	if s.Advanced.WatermarkOpacity < 0 || s.Advanced.WatermarkOpacity > 1 {
		return fmt.Errorf("%w: advanced.watermarkOpacity must be between 0 and 1", ErrInvalidValue)
	}
	return nil
}

// RGB parses a #RRGGBB color. Invalid input yields black.
func RGB(hex string) (r, g, b int) {
	if !hexColor.MatchString(hex) {
		return 0, 0, 0
	}
	_, _ = fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
