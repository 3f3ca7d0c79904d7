// Package labels renders printable box labels: an A4 grid of cells, each
// with a QR code carrying the box number.
package labels

import (
	"bytes"
	"fmt"

	"rfidship/internal/core/ports"
	"rfidship/internal/pkg/errs"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	pageWidth  = 210.0
	pageHeight = 297.0
	qrPixels   = 256
)

// Layout positions labels on A4 in millimetres.
type Layout struct {
	Cols       int
	Rows       int
	MarginTop  float64
	MarginLeft float64
	GapX       float64
	GapY       float64
}

// DefaultLayout fits eight labels per sheet.
var DefaultLayout = Layout{Cols: 2, Rows: 4, MarginTop: 10, MarginLeft: 10, GapX: 6, GapY: 6}

type PDFRenderer struct {
	layout Layout
}

func NewPDFRenderer(layout Layout) (*PDFRenderer, error) {
	if layout.Cols < 1 || layout.Rows < 1 {
		return nil, errs.NewValueIsInvalidError("label layout needs at least one row and one column")
	}
	if layout.labelWidth() <= 0 || layout.labelHeight() <= 0 {
		return nil, errs.NewValueIsInvalidError("label layout does not fit on A4")
	}
	return &PDFRenderer{layout: layout}, nil
}

func (l Layout) labelWidth() float64 {
	return (pageWidth - 2*l.MarginLeft - float64(l.Cols-1)*l.GapX) / float64(l.Cols)
}

func (l Layout) labelHeight() float64 {
	return (pageHeight - 2*l.MarginTop - float64(l.Rows-1)*l.GapY) / float64(l.Rows)
}

func (r *PDFRenderer) Render(labels []ports.BoxLabel) ([]byte, error) {
	if len(labels) == 0 {
		return nil, errs.NewValueIsRequiredError("labels")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Arial", "B", 10)

	perPage := r.layout.Cols * r.layout.Rows
	for i, label := range labels {
		if i%perPage == 0 {
			pdf.AddPage()
		}
		if err := r.draw(pdf, i, label); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) draw(pdf *gofpdf.Fpdf, index int, label ports.BoxLabel) error {
	cell := index % (r.layout.Cols * r.layout.Rows)
	w, h := r.layout.labelWidth(), r.layout.labelHeight()
	x := r.layout.MarginLeft + float64(cell%r.layout.Cols)*(w+r.layout.GapX)
	y := r.layout.MarginTop + float64(cell/r.layout.Cols)*(h+r.layout.GapY)

	png, err := qrcode.Encode(label.BoxNo, qrcode.Medium, qrPixels)
	if err != nil {
		return fmt.Errorf("encode QR for %s: %w", label.BoxNo, err)
	}

	imageName := fmt.Sprintf("qr_%d", index)
	options := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader(imageName, options, bytes.NewReader(png))

	qrSize := min(h*0.6, w*0.9)
	pdf.ImageOptions(imageName, x+(w-qrSize)/2, y+2, qrSize, qrSize, false, options, 0, "")

	pdf.Rect(x, y, w, h, "D")

	pdf.SetXY(x, y+qrSize+4)
	pdf.SetFontSize(12)
	pdf.CellFormat(w, 6, label.BoxNo, "", 2, "C", false, 0, "")

	pdf.SetFontSize(8)
	pdf.CellFormat(w, 4, fmt.Sprintf("Code %s  |  %d items", label.Code, label.ProductCount), "", 2, "C", false, 0, "")
	if label.ShipmentNo != "" {
		pdf.CellFormat(w, 4, "Shipment "+label.ShipmentNo, "", 2, "C", false, 0, "")
	}
	pdf.CellFormat(w, 4, label.CreatedAt.Format("2006-01-02"), "", 2, "C", false, 0, "")

	return pdf.Error()
}
