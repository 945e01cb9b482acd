package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/sh-sahil/emp-repo/dto"
	"github.com/sh-sahil/emp-repo/utils/form16"
)

// PDFProcessor turns an uploaded PDF into the text and table shape the
// Form-16 resolver consumes. Extraction is a single synchronous attempt;
// an unreadable file or a zero-page document is an extraction error.
type PDFProcessor interface {
	ExtractDocument(pdfData []byte) (*form16.RawDocument, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// Gap thresholds in PDF points for grouping positioned text fragments.
// Small gaps are word spacing inside a cell; large gaps are column breaks.
const (
	wordGap = 1.0
	cellGap = 18.0
)

func (p *pdfProcessor) ExtractDocument(pdfData []byte) (*form16.RawDocument, error) {
	if err := validatePDF(pdfData); err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrExtraction, err)
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrExtraction, err)
	}

	totalPage := r.NumPage()
	if totalPage == 0 {
		return nil, fmt.Errorf("%w: document has no pages", dto.ErrExtraction)
	}

	var textBuilder strings.Builder
	var tables []form16.Table

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}

		var table form16.Table
		for _, row := range rows {
			cells := clusterRow(row.Content)
			if len(cells) == 0 {
				continue
			}
			textBuilder.WriteString(strings.Join(cells, " "))
			textBuilder.WriteString("\n")
			table = append(table, cells)
		}
		if len(table) > 0 {
			tables = append(tables, table)
		}
	}

	return &form16.RawDocument{
		FullText: textBuilder.String(),
		Tables:   tables,
	}, nil
}

// clusterRow groups the positioned fragments of one visual row into cells
// by horizontal gap, left to right.
func clusterRow(words []pdf.Text) form16.Row {
	var row form16.Row
	var cell strings.Builder
	var prevEnd float64
	started := false

	for _, w := range words {
		if w.S == "" {
			continue
		}
		if started {
			gap := w.X - prevEnd
			switch {
			case gap > cellGap:
				row = append(row, strings.TrimSpace(cell.String()))
				cell.Reset()
			case gap > wordGap:
				cell.WriteString(" ")
			}
		}
		cell.WriteString(w.S)
		prevEnd = w.X + w.W
		started = true
	}
	if cell.Len() > 0 {
		row = append(row, strings.TrimSpace(cell.String()))
	}
	return row
}

// validatePDF rejects corrupt or non-PDF uploads before extraction.
func validatePDF(pdfData []byte) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(pdfData), conf)
	if err != nil {
		return err
	}
	return ctx.EnsurePageCount()
}
