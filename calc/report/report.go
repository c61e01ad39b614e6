// Package report renders a one-page PDF design summary.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Report struct {
	Project  string    `json:"project"`
	Author   string    `json:"author"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Rows     []Row     `json:"rows"`
	Warnings []string  `json:"warnings"`
	Notes    string    `json:"notes"`
}

// QuantityRow formats q in u with four significant figures.
func QuantityRow(label string, q quantity.Quantity, u quantity.Unit) Row {
	v, err := q.In(u)
	if err != nil {
		return Row{Label: label, Value: q.String()}
	}
	return Row{Label: label, Value: strconv.FormatFloat(v, 'g', 4, 64) + " " + u.Symbol}
}

// Write renders r as PDF to w.
func Write(w io.Writer, r Report) error {
	if r.Title == "" {
		r.Title = "Detonation Tube Design Report"
	}
	if r.Date.IsZero() {
		r.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(r.Title, true)
	pdf.SetAuthor(r.Author, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(r.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", r.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", r.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", r.Date.Format("2006-01-02")))
	pdf.Ln(10)

	if len(r.Rows) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(90, 7, "Quantity", "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 7, "Value", "1", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, row := range r.Rows {
			pdf.CellFormat(90, 7, tr(row.Label), "1", 0, "L", false, 0, "")
			pdf.CellFormat(90, 7, tr(row.Value), "1", 1, "L", false, 0, "")
		}
		pdf.Ln(6)
	}

	if len(r.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, "Warnings")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, msg := range r.Warnings {
			pdf.MultiCell(0, 6, tr("- "+msg), "", "L", false)
		}
		pdf.Ln(4)
	}

	pdf.MultiCell(0, 6, tr(r.Notes), "", "L", false)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
