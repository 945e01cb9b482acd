package form16

import (
	"strings"

	"github.com/sh-sahil/emp-repo/dto"
)

// RawDocument is the page-ordered extraction output the resolver consumes.
// FullText holds all pages' text concatenated in page order; Tables holds
// every recovered table in document order.
type RawDocument struct {
	FullText string
	Tables   []Table
}

// Table is an ordered sequence of rows as laid out in the document.
type Table []Row

// Row is one table row. An empty cell marks a merged or blank region in
// the source layout; the resolver treats it as absent.
type Row []string

// Resolve maps an extracted document to the flat tax detail fields.
// A missing label is never an error; the field keeps its rule default, so
// a partially matching PDF still yields a usable result. Resolution is
// deterministic: the same document always produces the same details.
func Resolve(doc *RawDocument) (dto.TaxDetails, error) {
	if doc == nil {
		return nil, dto.ErrExtraction
	}

	details := make(dto.TaxDetails, len(textRules)+len(tableRules)+2)
	for _, r := range textRules {
		details[r.Field] = r.Default
	}
	for _, r := range tableRules {
		details[r.Field] = r.Default
	}
	details[grossSalaryField] = grossDefault

	// Pass 1: scalar fields matched against the page text.
	for _, r := range textRules {
		if m := r.Pattern.FindStringSubmatch(doc.FullText); m != nil {
			details[r.Field] = stripThousands(m[1])
		}
	}
	if standardDeductionRe.MatchString(doc.FullText) {
		details["standard_deduction"] = 50000.0
	} else {
		details["standard_deduction"] = 0.0
	}

	// Pass 2: label-and-offset lookups over every row of every table,
	// table order then row order. The first row containing a label wins;
	// later occurrences are ignored.
	matched := make(map[string]bool, len(tableRules))
	var gross grossSalaryScan
	for _, table := range doc.Tables {
		for _, row := range table {
			if v, ok := gross.feed(row); ok {
				details[grossSalaryField] = v
			}
			for i := range tableRules {
				r := &tableRules[i]
				if matched[r.Field] {
					continue
				}
				idx, ok := indexOfLabel(row, r.Label)
				if !ok {
					continue
				}
				matched[r.Field] = true
				if v, ok := cellAt(row, idx+r.Offset); ok {
					details[r.Field] = stripThousands(v)
				}
			}
		}
	}

	return details, nil
}

type grossScanState int

const (
	grossSearching grossScanState = iota
	grossSectionOpen
	grossDone
)

// grossSalaryScan is the one stateful rule: it opens on the row carrying
// the section header and reads the first "Total" row at or after it. A
// "Total" row seen before the header never matches.
type grossSalaryScan struct {
	state grossScanState
}

func (g *grossSalaryScan) feed(row Row) (string, bool) {
	if g.state == grossSearching {
		if _, ok := indexOfLabel(row, grossSalaryLabel); ok {
			g.state = grossSectionOpen
		}
	}
	if g.state == grossSectionOpen {
		if idx, ok := indexOfLabel(row, grossTotalLabel); ok {
			g.state = grossDone
			if v, ok := cellAt(row, idx+grossTotalOffset); ok {
				return stripThousands(v), true
			}
		}
	}
	return "", false
}

// indexOfLabel reports the position of the first cell equal to label.
// Cells are compared after whitespace collapsing because pdfplumber-style
// extraction wraps long labels across lines inside one cell.
func indexOfLabel(row Row, label string) (int, bool) {
	for i, cell := range row {
		if normalizeSpace(cell) == label {
			return i, true
		}
	}
	return 0, false
}

// cellAt reads a cell. An index past the end of the row or a blank cell
// reports absence, never an error.
func cellAt(row Row, i int) (string, bool) {
	if i < 0 || i >= len(row) {
		return "", false
	}
	v := strings.TrimSpace(row[i])
	if v == "" {
		return "", false
	}
	return v, true
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func stripThousands(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}
