package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
)

// ContentTypePDF is the media type of rendered documents
const ContentTypePDF = "application/pdf"

// Renderer turns a document model into bytes.
type Renderer interface {
	Render(ctx context.Context, m *Model, s pdfsettings.PdfSettings) ([]byte, error)
}

// PDFRenderer lays documents out with maroto.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render generates the PDF. Failures are reported as *domain.ExternalServiceError.
func (r *PDFRenderer) Render(ctx context.Context, m *Model, s pdfsettings.PdfSettings) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mt := maroto.New(pageConfig(m, s))
	st := newStyles(s)

	if m.Watermark != "" {
		mt.AddRows(row.New(8).Add(col.New(12).Add(text.New(m.Watermark, st.watermark))))
	}
	addHeader(mt, m, st)
	addParties(mt, m, st)
	addInfo(mt, m, st)
	addItems(mt, m, st, s)
	addSummary(mt, m, st)
	addText(mt, m.Notes, st)
	addText(mt, m.Terms, st)
	addSignature(mt, m, st)
	addText(mt, m.Footer, st)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := mt.Generate()
	if err != nil {
		return nil, &domain.ExternalServiceError{Service: "renderer", Op: "generate pdf", Err: err}
	}
	return doc.GetBytes(), nil
}

func pageConfig(m *Model, s pdfsettings.PdfSettings) *entity.Config {
	b := config.NewBuilder().
		WithOrientation(orientationOf(s.Document.Orientation)).
		WithPageSize(pageSizeOf(s.Document.PaperSize)).
		WithLeftMargin(s.Margins.Left).
		WithTopMargin(s.Margins.Top).
		WithRightMargin(s.Margins.Right)

	if m.PageNumbers {
		r, g, bl := pdfsettings.RGB(s.Colors.Secondary)
		b = b.WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    s.FontSize.Small,
			Color:   &props.Color{Red: r, Green: g, Blue: bl},
		})
	}
	return b.Build()
}

func orientationOf(o string) orientation.Type {
	if o == pdfsettings.OrientationLandscape {
		return orientation.Horizontal
	}
	return orientation.Vertical
}

func pageSizeOf(size string) pagesize.Type {
	switch size {
	case pdfsettings.PaperSizeLetter:
		return pagesize.Letter
	case pdfsettings.PaperSizeLegal:
		return pagesize.Legal
	default:
		return pagesize.A4
	}
}

// familyOf maps the configured family onto the core PDF fonts
func familyOf(name string) string {
	switch f := strings.ToLower(name); f {
	case "arial", "courier", "helvetica":
		return f
	default:
		return "helvetica"
	}
}

type styles struct {
	family       string
	title        props.Text
	heading      props.Text
	body         props.Text
	small        props.Text
	label        props.Text
	right        props.Text
	rightBold    props.Text
	watermark    props.Text
	tableHeader  props.Text
	headerCell   *props.Cell
	altCell      *props.Cell
	summaryCell  *props.Cell
	primary      *props.Color
	text         *props.Color
	secondary    *props.Color
	rowHeight    float64
	sectionSpace float64
}

func color(hex string) *props.Color {
	r, g, b := pdfsettings.RGB(hex)
	return &props.Color{Red: r, Green: g, Blue: b}
}

func newStyles(s pdfsettings.PdfSettings) styles {
	family := familyOf(s.FontFamily)
	primary := color(s.Colors.Primary)
	txt := color(s.Colors.Text)
	secondary := color(s.Colors.Secondary)

	st := styles{
		family:       family,
		primary:      primary,
		text:         txt,
		secondary:    secondary,
		rowHeight:    s.Spacing.TableRow,
		sectionSpace: s.Spacing.Section,
		title:        props.Text{Family: family, Size: s.FontSize.Title, Style: fontstyle.Bold, Align: align.Right, Color: primary},
		heading:      props.Text{Family: family, Size: s.FontSize.Header, Style: fontstyle.Bold, Align: align.Left, Color: primary},
		body:         props.Text{Family: family, Size: s.FontSize.Base, Align: align.Left, Color: txt},
		small:        props.Text{Family: family, Size: s.FontSize.Small, Align: align.Left, Color: secondary},
		label:        props.Text{Family: family, Size: s.FontSize.Small, Style: fontstyle.Bold, Align: align.Left, Color: secondary},
		right:        props.Text{Family: family, Size: s.FontSize.Base, Align: align.Right, Color: txt},
		rightBold:    props.Text{Family: family, Size: s.FontSize.Base, Style: fontstyle.Bold, Align: align.Right, Color: txt},
		watermark:    props.Text{Family: family, Size: s.FontSize.Header, Style: fontstyle.Bold, Align: align.Center, Color: color(s.Colors.Border)},
		summaryCell:  &props.Cell{BackgroundColor: color(s.Colors.Border)},
		altCell:      &props.Cell{BackgroundColor: &props.Color{Red: 248, Green: 249, Blue: 250}},
		tableHeader:  props.Text{Family: family, Size: s.FontSize.Small, Style: fontstyle.Bold, Align: align.Left, Color: primary},
	}

	if s.Table.HeaderStyle == pdfsettings.HeaderStyleFilled {
		st.headerCell = &props.Cell{BackgroundColor: primary}
		st.tableHeader.Color = &props.Color{Red: 255, Green: 255, Blue: 255}
	}
	if st.rowHeight <= 0 {
		st.rowHeight = 7
	}
	return st
}

func addHeader(m core.Maroto, doc *Model, st styles) {
	if doc.Header == nil && doc.Company == nil {
		return
	}

	left := col.New(6)
	if doc.Company != nil {
		left.Add(text.New(doc.Company.Name, st.heading))
	}
	right := col.New(6)
	if doc.Header != nil {
		right.Add(text.New(doc.Header.Title, st.title))
	}
	m.AddRows(row.New(12).Add(left, right))

	if doc.Company != nil {
		contact := joinNonEmpty(" | ", doc.Company.Address, doc.Company.Phone, doc.Company.Email, doc.Company.Website)
		if contact != "" {
			m.AddRows(row.New(6).Add(col.New(12).Add(text.New(contact, st.small))))
		}
		if doc.Company.TaxID != "" {
			m.AddRows(row.New(6).Add(col.New(12).Add(text.New("Tax ID: "+doc.Company.TaxID, st.small))))
		}
	}
	m.AddRows(row.New(st.sectionSpace))
}

func addParties(m core.Maroto, doc *Model, st styles) {
	if doc.Customer == nil {
		return
	}
	m.AddRows(row.New(6).Add(col.New(12).Add(text.New("CUSTOMER", st.label))))
	m.AddRows(row.New(st.rowHeight).Add(col.New(12).Add(text.New(doc.Customer.Name, st.body))))
	if doc.Customer.Reference != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New("Ref: "+doc.Customer.Reference, st.small))))
	}
	m.AddRows(row.New(st.sectionSpace))
}

func addInfo(m core.Maroto, doc *Model, st styles) {
	if doc.Info == nil {
		return
	}
	for _, f := range doc.Info.Fields {
		m.AddRows(row.New(st.rowHeight).Add(
			col.New(4).Add(text.New(f.Label, st.label)),
			col.New(8).Add(text.New(f.Value, st.body)),
		))
	}
	m.AddRows(row.New(st.sectionSpace))
}

func addItems(m core.Maroto, doc *Model, st styles, s pdfsettings.PdfSettings) {
	if doc.Items == nil {
		return
	}

	header := make([]core.Col, 0, len(doc.Items.Columns))
	for _, c := range doc.Items.Columns {
		ts := st.tableHeader
		if c.Align == AlignRight {
			ts.Align = align.Right
		}
		cell := col.New(c.Width).Add(text.New(c.Label, ts))
		if st.headerCell != nil {
			cell = cell.WithStyle(st.headerCell)
		}
		header = append(header, cell)
	}
	m.AddRows(row.New(st.rowHeight + 1).Add(header...))

	for i, cells := range doc.Items.Rows {
		cols := make([]core.Col, 0, len(cells))
		for j, value := range cells {
			c := doc.Items.Columns[j]
			ts := st.body
			if c.Align == AlignRight {
				ts = st.right
			}
			cell := col.New(c.Width).Add(text.New(value, ts))
			if doc.Items.AlternateRow && i%2 == 1 {
				cell = cell.WithStyle(st.altCell)
			}
			cols = append(cols, cell)
		}
		m.AddRows(row.New(st.rowHeight).Add(cols...))
	}
	m.AddRows(row.New(s.Spacing.Paragraph))
}

func addSummary(m core.Maroto, doc *Model, st styles) {
	if doc.Summary == nil {
		return
	}
	for _, line := range doc.Summary.Lines {
		ts := st.right
		if line.Emphasis {
			ts = st.rightBold
		}
		label := col.New(9).Add(text.New(line.Label, st.rightBold))
		value := col.New(3).Add(text.New(line.Value, ts))
		if line.Emphasis {
			label = label.WithStyle(st.summaryCell)
			value = value.WithStyle(st.summaryCell)
		}
		m.AddRows(row.New(st.rowHeight).Add(label, value))
	}
	m.AddRows(row.New(st.sectionSpace))
}

func addText(m core.Maroto, t *Text, st styles) {
	if t == nil {
		return
	}
	if t.Title != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(strings.ToUpper(t.Title), st.label))))
	}
	m.AddRows(row.New(st.rowHeight * float64(1+strings.Count(t.Body, "\n"))).Add(col.New(12).Add(text.New(t.Body, st.body))))
	m.AddRows(row.New(st.sectionSpace / 2))
}

func addSignature(m core.Maroto, doc *Model, st styles) {
	if doc.Signature == nil || len(doc.Signature.Labels) == 0 {
		return
	}
	width := 12 / len(doc.Signature.Labels)
	m.AddRows(row.New(15))
	cols := make([]core.Col, 0, len(doc.Signature.Labels))
	for _, l := range doc.Signature.Labels {
		cols = append(cols, col.New(width).Add(text.New("______________________________", st.small), text.New(l, props.Text{
			Family: st.family,
			Size:   st.small.Size,
			Top:    5,
			Color:  st.secondary,
		})))
	}
	m.AddRows(row.New(12).Add(cols...))
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// FilenameFor returns a download name with the given extension.
func FilenameFor(m *Model, ext string) string {
	base := strings.TrimSuffix(m.Filename, ".pdf")
	return fmt.Sprintf("%s.%s", base, ext)
}
