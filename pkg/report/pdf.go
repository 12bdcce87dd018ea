package report

import (
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// writePDF converts the rendered HTML document to a fixed-layout PDF.
// The document carries its own print stylesheet; PrintMediaType makes
// the converter apply it, so the PDF is a pure derivative of the same
// content.
func writePDF(html, outPath string) error {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return err
	}

	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.MarginTop.Set(20)
	pdfg.MarginBottom.Set(20)
	pdfg.MarginLeft.Set(15)
	pdfg.MarginRight.Set(15)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.PrintMediaType.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return err
	}

	return pdfg.WriteFile(outPath)
}
