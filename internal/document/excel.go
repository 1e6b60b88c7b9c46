package document

import (
	"fmt"

	"github.com/straye-as/fieldservice-api/internal/costing"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the media type of spreadsheet exports
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type sheetStyles struct {
	title, header, money, bold, boldMoney int
}

func newSheetStyles(f *excelize.File, s pdfsettings.PdfSettings) (sheetStyles, error) {
	var st sheetStyles
	var err error

	if st.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: s.Colors.Primary},
	}); err != nil {
		return st, fmt.Errorf("create title style: %w", err)
	}

	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{s.Colors.Primary}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	}); err != nil {
		return st, fmt.Errorf("create header style: %w", err)
	}

	moneyFmt := "#,##0.00"
	if st.money, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &moneyFmt,
		Border:       thinBorders(),
	}); err != nil {
		return st, fmt.Errorf("create money style: %w", err)
	}

	if st.bold, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return st, fmt.Errorf("create bold style: %w", err)
	}

	if st.boldMoney, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &moneyFmt,
	}); err != nil {
		return st, fmt.Errorf("create total style: %w", err)
	}
	return st, nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}

type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, value any, style int) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		w.err = fmt.Errorf("set %s: %w", cell, err)
		return
	}
	if style != 0 {
		if err := w.f.SetCellStyle(w.sheet, cell, cell, style); err != nil {
			w.err = fmt.Errorf("style %s: %w", cell, err)
		}
	}
}

func newSheet(name string, widths []float64) (*excelize.File, *sheetWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("set sheet name: %w", err)
	}
	for i, width := range widths {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		if err := f.SetColWidth(name, colName, colName, width); err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("set col width %s: %w", colName, err)
		}
	}
	return f, &sheetWriter{f: f, sheet: name}, nil
}

// ExportOffers writes an offer list with a totals row.
func ExportOffers(offers []domain.Offer, s pdfsettings.PdfSettings) ([]byte, error) {
	f, w, err := newSheet("Offers", []float64{16, 36, 24, 12, 16, 14, 12, 12, 14, 12})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := newSheetStyles(f, s)
	if err != nil {
		return nil, err
	}

	w.set(1, 1, "Offers", st.title)
	headers := []string{"Number", "Title", "Contact", "Status", "Category", "Amount", "Taxes", "Discount", "Total", "Created"}
	for i, h := range headers {
		w.set(i+1, 3, h, st.header)
	}

	r := 4
	var amount, taxes, discount, total float64
	for _, o := range offers {
		w.set(1, r, o.OfferNumber, 0)
		w.set(2, r, o.Title, 0)
		w.set(3, r, o.ContactName, 0)
		w.set(4, r, string(o.Status), 0)
		w.set(5, r, o.Category, 0)
		w.set(6, r, o.Amount, st.money)
		w.set(7, r, o.Taxes, st.money)
		w.set(8, r, o.Discount, st.money)
		w.set(9, r, o.TotalAmount, st.money)
		w.set(10, r, FormatDate(o.CreatedAt, s.Document.DateFormat), 0)
		amount += o.Amount
		taxes += o.Taxes
		discount += o.Discount
		total += o.TotalAmount
		r++
	}

	w.set(5, r, "Total", st.bold)
	w.set(6, r, domain.RoundMoney(amount), st.boldMoney)
	w.set(7, r, domain.RoundMoney(taxes), st.boldMoney)
	w.set(8, r, domain.RoundMoney(discount), st.boldMoney)
	w.set(9, r, domain.RoundMoney(total), st.boldMoney)
	if w.err != nil {
		return nil, w.err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportTimeSheet writes time entries with per-entry cost and a summary block.
func ExportTimeSheet(title string, entries []domain.TimeEntry, s pdfsettings.PdfSettings) ([]byte, error) {
	summary, err := costing.SummarizeTime(entries)
	if err != nil {
		return nil, err
	}

	f, w, err := newSheet("Time sheet", []float64{20, 16, 14, 14, 12, 10, 12, 12, 40})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := newSheetStyles(f, s)
	if err != nil {
		return nil, err
	}

	w.set(1, 1, title, st.title)
	headers := []string{"Technician", "Work type", "Start", "End", "Duration", "Billable", "Rate", "Cost", "Description"}
	for i, h := range headers {
		w.set(i+1, 3, h, st.header)
	}

	r := 4
	for _, e := range entries {
		cost, err := costing.ComputeTimeCost(e)
		if err != nil {
			return nil, err
		}
		billable := "no"
		if e.Billable {
			billable = "yes"
		}
		w.set(1, r, e.TechnicianID, 0)
		w.set(2, r, string(e.WorkType), 0)
		w.set(3, r, FormatDatePtr(e.StartTime, s.Document.DateFormat), 0)
		w.set(4, r, FormatDatePtr(e.EndTime, s.Document.DateFormat), 0)
		w.set(5, r, FormatMinutes(e.Duration), 0)
		w.set(6, r, billable, 0)
		w.set(7, r, e.HourlyRate, st.money)
		w.set(8, r, cost, st.money)
		w.set(9, r, e.Description, 0)
		r++
	}

	r++
	w.set(4, r, "Total time", st.bold)
	w.set(5, r, FormatMinutes(summary.TotalMinutes), 0)
	r++
	w.set(4, r, "Billable time", st.bold)
	w.set(5, r, FormatMinutes(summary.BillableMinutes), 0)
	w.set(7, r, "Billable cost", st.bold)
	w.set(8, r, summary.BillableCost, st.boldMoney)
	if w.err != nil {
		return nil, w.err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
