package service

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"

	"github.com/sh-sahil/emp-repo/dto"
	"github.com/sh-sahil/emp-repo/utils/form16"
)

func word(s string, x, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w}
}

func TestClusterRowSplitsOnColumnGaps(t *testing.T) {
	row := clusterRow([]pdf.Text{
		word("House", 10, 30),
		word("rent", 43, 20),
		word("allowance", 66, 50),
		word("12,000", 200, 40),
	})

	assert.Equal(t, form16.Row{"House rent allowance", "12,000"}, row)
}

func TestClusterRowJoinsAdjacentFragments(t *testing.T) {
	// Fragments with no real gap belong to the same word.
	row := clusterRow([]pdf.Text{
		word("Assess", 10, 30),
		word("ment", 40.5, 20),
		word("Year", 64, 22),
	})

	assert.Equal(t, form16.Row{"Assessment Year"}, row)
}

func TestClusterRowSkipsEmptyFragments(t *testing.T) {
	row := clusterRow([]pdf.Text{
		word("", 10, 5),
		word("Total", 20, 25),
		word("8,50,000", 300, 45),
	})

	assert.Equal(t, form16.Row{"Total", "8,50,000"}, row)
}

func TestClusterRowEmptyInput(t *testing.T) {
	assert.Nil(t, clusterRow(nil))
}

func TestExtractDocumentRejectsGarbage(t *testing.T) {
	p := NewPDFProcessor()

	_, err := p.ExtractDocument([]byte("definitely not a pdf"))
	assert.ErrorIs(t, err, dto.ErrExtraction)
}

func TestExtractDocumentRejectsEmptyInput(t *testing.T) {
	p := NewPDFProcessor()

	_, err := p.ExtractDocument(nil)
	assert.ErrorIs(t, err, dto.ErrExtraction)
}
