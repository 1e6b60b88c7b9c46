// Package document turns offers and service orders into render-ready
// document models and hands them to a renderer. Sections hidden by the
// settings are absent from the model, so renderers only check for nil.
package document

import (
	"fmt"
	"strconv"
	"time"

	"github.com/straye-as/fieldservice-api/internal/costing"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
)

// Model is the render-ready structure for one document.
type Model struct {
	Kind        domain.EntityType `json:"kind"`
	Title       string            `json:"title"`
	Filename    string            `json:"filename"`
	Watermark   string            `json:"watermark,omitempty"`
	PageNumbers bool              `json:"pageNumbers"`

	Header    *Header    `json:"header,omitempty"`
	Company   *Company   `json:"company,omitempty"`
	Customer  *Customer  `json:"customer,omitempty"`
	Info      *Info      `json:"info,omitempty"`
	Items     *Table     `json:"items,omitempty"`
	Summary   *Summary   `json:"summary,omitempty"`
	Notes     *Text      `json:"notes,omitempty"`
	Terms     *Text      `json:"terms,omitempty"`
	Signature *Signature `json:"signature,omitempty"`
	Footer    *Text      `json:"footer,omitempty"`
}

type Header struct {
	Title string `json:"title"`
	Logo  string `json:"logo,omitempty"`
}

type Company struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}

type Customer struct {
	Name      string `json:"name"`
	Reference string `json:"reference,omitempty"`
}

// Field is a label/value pair of the document info block
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Info struct {
	Fields []Field `json:"fields"`
}

// Align of a table column
type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

// Column widths are grid units out of GridSize
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Width int    `json:"width"`
	Align Align  `json:"align"`
}

// GridSize is the number of width units a table row spans
const GridSize = 12

type Table struct {
	Columns      []Column   `json:"columns"`
	Rows         [][]string `json:"rows"`
	HeaderStyle  string     `json:"headerStyle"`
	AlternateRow bool       `json:"alternateRow"`
}

type SummaryLine struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Emphasis bool   `json:"emphasis,omitempty"`
}

type Summary struct {
	Lines []SummaryLine `json:"lines"`
}

type Text struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
}

type Signature struct {
	Labels []string `json:"labels"`
}

// tableRow holds one line before columns are selected
type tableRow struct {
	code, itemType, name, description, quantity, unitPrice, discount, total string
}

type columnSpec struct {
	key, label string
	width      int
	align      Align
	show       func(pdfsettings.TableOptions) bool
	cell       func(tableRow) string
}

var itemColumns = []columnSpec{
	{"code", "Code", 2, AlignLeft, func(t pdfsettings.TableOptions) bool { return t.ShowItemCodes }, func(r tableRow) string { return r.code }},
	{"type", "Type", 1, AlignLeft, func(t pdfsettings.TableOptions) bool { return t.ShowItemType }, func(r tableRow) string { return r.itemType }},
	{"name", "Item", 0, AlignLeft, func(pdfsettings.TableOptions) bool { return true }, func(r tableRow) string { return r.name }},
	{"description", "Description", 0, AlignLeft, func(t pdfsettings.TableOptions) bool { return t.ShowDescriptions }, func(r tableRow) string { return r.description }},
	{"quantity", "Qty", 1, AlignRight, func(t pdfsettings.TableOptions) bool { return t.ShowQuantity }, func(r tableRow) string { return r.quantity }},
	{"unitPrice", "Unit price", 2, AlignRight, func(t pdfsettings.TableOptions) bool { return t.ShowUnitPrice }, func(r tableRow) string { return r.unitPrice }},
	{"discount", "Discount", 1, AlignRight, func(t pdfsettings.TableOptions) bool { return t.ShowDiscount }, func(r tableRow) string { return r.discount }},
	{"total", "Total", 2, AlignRight, func(pdfsettings.TableOptions) bool { return true }, func(r tableRow) string { return r.total }},
}

// buildTable selects columns from the table flags. Name and description
// share the width left over by the fixed columns.
func buildTable(rows []tableRow, opts pdfsettings.TableOptions) *Table {
	var specs []columnSpec
	fixed := 0
	for _, c := range itemColumns {
		if c.show(opts) {
			specs = append(specs, c)
			fixed += c.width
		}
	}

	rest := GridSize - fixed
	nameWidth, descWidth := rest, 0
	if opts.ShowDescriptions {
		descWidth = rest / 2
		nameWidth = rest - descWidth
	}

	t := &Table{HeaderStyle: opts.HeaderStyle, AlternateRow: opts.AlternateRowColors}
	for _, c := range specs {
		width := c.width
		switch c.key {
		case "name":
			width = nameWidth
		case "description":
			width = descWidth
		}
		t.Columns = append(t.Columns, Column{Key: c.key, Label: c.label, Width: width, Align: c.align})
	}

	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		cells := make([]string, len(specs))
		for i, c := range specs {
			cells[i] = c.cell(r)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func formatDiscount(item domain.OfferItem, symbol string) string {
	if item.Discount == 0 {
		return ""
	}
	if item.DiscountType == domain.DiscountTypePercentage {
		return strconv.FormatFloat(item.Discount, 'f', -1, 64) + "%"
	}
	return FormatCurrency(item.Discount, symbol)
}

// applyCommon fills the sections shared by every document kind.
func applyCommon(m *Model, s pdfsettings.PdfSettings, title string) {
	show := s.ShowElements

	m.Title = title
	m.PageNumbers = show.PageNumbers
	if s.Advanced.Watermark {
		m.Watermark = s.Advanced.WatermarkText
	}

	if show.Header {
		m.Header = &Header{Title: title}
		if show.Logo {
			m.Header.Logo = s.Company.Logo
		}
	}
	if show.CompanyInfo {
		m.Company = &Company{
			Name:    s.Company.Name,
			Address: s.Company.Address,
			Phone:   s.Company.Phone,
			Email:   s.Company.Email,
			Website: s.Company.Website,
			TaxID:   s.Company.TaxID,
		}
	}
	if show.Terms && s.Document.TermsText != "" {
		m.Terms = &Text{Title: "Terms", Body: s.Document.TermsText}
	}
	if show.Signature {
		m.Signature = &Signature{Labels: []string{"Date / Signature (customer)", "Date / Signature (company)"}}
	}
	if show.Footer && s.Document.FooterText != "" {
		m.Footer = &Text{Body: s.Document.FooterText}
	}
}

// BuildOfferDocument assembles the quote document for an offer.
func BuildOfferDocument(o *domain.Offer, s pdfsettings.PdfSettings, issued time.Time) *Model {
	show := s.ShowElements
	symbol := s.Document.CurrencySymbol
	dates := s.Document.DateFormat

	title := "Offer"
	if o.OfferNumber != "" {
		title = "Offer " + o.OfferNumber
	}

	m := &Model{Kind: domain.EntityTypeOffer, Filename: offerFilename(o)}
	applyCommon(m, s, title)

	if show.CustomerInfo {
		m.Customer = &Customer{Name: o.ContactName}
		if o.ContactID != nil {
			m.Customer.Reference = o.ContactID.String()
		}
	}

	if show.DocumentInfo {
		fields := []Field{
			{Label: "Offer number", Value: o.OfferNumber},
			{Label: "Date", Value: FormatDate(issued, dates)},
		}
		if o.ValidUntil != nil {
			fields = append(fields, Field{Label: "Valid until", Value: FormatDatePtr(o.ValidUntil, dates)})
		}
		fields = append(fields, Field{Label: "Title", Value: o.Title})
		if o.Category != "" {
			fields = append(fields, Field{Label: "Category", Value: o.Category})
		}
		m.Info = &Info{Fields: fields}
	}

	if show.ItemsTable {
		rows := make([]tableRow, 0, len(o.Items))
		for _, item := range o.Items {
			rows = append(rows, tableRow{
				code:        item.ItemID,
				itemType:    string(item.Type),
				name:        item.Name,
				description: item.Description,
				quantity:    strconv.Itoa(item.Quantity),
				unitPrice:   FormatCurrency(item.UnitPrice, symbol),
				discount:    formatDiscount(item, symbol),
				total:       FormatCurrency(item.TotalPrice, symbol),
			})
		}
		m.Items = buildTable(rows, s.Table)
	}

	if show.Summary {
		lines := []SummaryLine{{Label: "Subtotal", Value: FormatCurrency(o.Amount, symbol)}}
		if o.Taxes != 0 {
			lines = append(lines, SummaryLine{Label: "Taxes", Value: FormatCurrency(o.Taxes, symbol)})
		}
		if o.Discount != 0 {
			lines = append(lines, SummaryLine{Label: "Discount", Value: FormatCurrency(-o.Discount, symbol)})
		}
		lines = append(lines, SummaryLine{Label: "Total", Value: FormatCurrency(o.TotalAmount, symbol), Emphasis: true})
		m.Summary = &Summary{Lines: lines}
	}

	if show.Notes && o.Notes != "" {
		m.Notes = &Text{Title: "Notes", Body: o.Notes}
	}

	return m
}

// ServiceOrderReport bundles a service order with the records its report lists.
type ServiceOrderReport struct {
	Order     *domain.ServiceOrder
	Time      []domain.TimeEntry
	Materials []domain.MaterialUsage
	Expenses  []domain.ExpenseEntry
}

// BuildServiceOrderDocument assembles the work report for a service order.
// Material lines are listed one per usage, time is grouped by work type.
func BuildServiceOrderDocument(r ServiceOrderReport, s pdfsettings.PdfSettings, issued time.Time) (*Model, error) {
	o := r.Order
	show := s.ShowElements
	symbol := s.Document.CurrencySymbol
	dates := s.Document.DateFormat

	title := "Service Order"
	if o.OrderNumber != "" {
		title = "Service Order " + o.OrderNumber
	}

	m := &Model{Kind: domain.EntityTypeServiceOrder, Filename: serviceOrderFilename(o)}
	applyCommon(m, s, title)

	if show.CustomerInfo {
		m.Customer = &Customer{Name: o.ContactName}
		if o.ContactID != nil {
			m.Customer.Reference = o.ContactID.String()
		}
	}

	summary, err := costing.SummarizeTime(r.Time)
	if err != nil {
		return nil, err
	}

	if show.DocumentInfo {
		fields := []Field{
			{Label: "Order number", Value: o.OrderNumber},
			{Label: "Date", Value: FormatDate(issued, dates)},
			{Label: "Status", Value: string(o.Status)},
			{Label: "Priority", Value: string(o.Priority)},
		}
		if o.ScheduledAt != nil {
			fields = append(fields, Field{Label: "Scheduled", Value: FormatDatePtr(o.ScheduledAt, dates)})
		}
		if o.CompletedAt != nil {
			fields = append(fields, Field{Label: "Completed", Value: FormatDatePtr(o.CompletedAt, dates)})
		}
		fields = append(fields, Field{Label: "Time spent", Value: FormatMinutes(summary.TotalMinutes)})
		m.Info = &Info{Fields: fields}
	}

	if show.ItemsTable {
		var rows []tableRow
		for _, mu := range r.Materials {
			code := ""
			if mu.ArticleID != nil {
				code = mu.ArticleID.String()[:8]
			}
			desc := ""
			if mu.Replacing != nil {
				desc = fmt.Sprintf("Replaces %s (%s)", mu.Replacing.OldArticleModel, mu.Replacing.OldArticleStatus)
			}
			rows = append(rows, tableRow{
				code:        code,
				itemType:    string(domain.OfferItemTypeArticle),
				name:        mu.Name,
				description: desc,
				quantity:    strconv.Itoa(mu.Quantity),
				unitPrice:   FormatCurrency(mu.UnitPrice, symbol),
				total:       FormatCurrency(mu.TotalCost, symbol),
			})
		}
		for _, g := range groupTimeByWorkType(r.Time) {
			cost, err := costing.SummarizeTime(g.entries)
			if err != nil {
				return nil, err
			}
			rows = append(rows, tableRow{
				itemType:    string(domain.OfferItemTypeService),
				name:        "Labor: " + string(g.workType),
				description: fmt.Sprintf("%d entries, %s billable", len(g.entries), FormatMinutes(cost.BillableMinutes)),
				quantity:    FormatMinutes(cost.TotalMinutes),
				total:       FormatCurrency(cost.BillableCost, symbol),
			})
		}
		m.Items = buildTable(rows, s.Table)
	}

	if show.Summary {
		f := o.Financials
		m.Summary = &Summary{Lines: []SummaryLine{
			{Label: "Labor", Value: FormatCurrency(f.LaborCost, symbol)},
			{Label: "Material", Value: FormatCurrency(f.MaterialCost, symbol)},
			{Label: "Travel", Value: FormatCurrency(f.TravelCost, symbol)},
			{Label: "Equipment", Value: FormatCurrency(f.EquipmentCost, symbol)},
			{Label: "Overhead", Value: FormatCurrency(f.OverheadCost, symbol)},
			{Label: "Total cost", Value: FormatCurrency(f.ActualCost, symbol), Emphasis: true},
			{Label: "Estimated", Value: FormatCurrency(f.EstimatedCost, symbol)},
		}}
	}

	if show.Notes && o.Description != "" {
		m.Notes = &Text{Title: "Description", Body: o.Description}
	}

	return m, nil
}

type workTypeGroup struct {
	workType domain.WorkType
	entries  []domain.TimeEntry
}

// groupTimeByWorkType keeps the first-seen order of work types
func groupTimeByWorkType(entries []domain.TimeEntry) []workTypeGroup {
	var groups []workTypeGroup
	pos := map[domain.WorkType]int{}
	for _, e := range entries {
		i, ok := pos[e.WorkType]
		if !ok {
			i = len(groups)
			pos[e.WorkType] = i
			groups = append(groups, workTypeGroup{workType: e.WorkType})
		}
		groups[i].entries = append(groups[i].entries, e)
	}
	return groups
}

func offerFilename(o *domain.Offer) string {
	if o.OfferNumber != "" {
		return o.OfferNumber + ".pdf"
	}
	return "offer-" + o.ID.String()[:8] + ".pdf"
}

func serviceOrderFilename(o *domain.ServiceOrder) string {
	if o.OrderNumber != "" {
		return o.OrderNumber + ".pdf"
	}
	return "service-order-" + o.ID.String()[:8] + ".pdf"
}
