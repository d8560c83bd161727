package reports

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"hirecost/internal/domain/comparison"
)

const pdfTitle = "Hiring cost comparison"

// WritePDF renders the report as a single A4 document.
func WritePDF(w io.Writer, in comparison.Input, groups []comparison.LineGroup) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(pdfTitle, false)
	pdf.SetCreator("hirecost", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, pdfTitle)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, heading(in))
	pdf.Ln(10)

	for _, group := range groups {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, group.Title, "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, item := range group.Items {
			pdf.Cell(0, 6, Line(item))
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}
	return pdf.Output(w)
}
