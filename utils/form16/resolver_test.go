package form16

import (
	"testing"

	"github.com/sh-sahil/emp-repo/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNilDocument(t *testing.T) {
	_, err := Resolve(nil)
	assert.ErrorIs(t, err, dto.ErrExtraction)
}

func TestResolveDefaults(t *testing.T) {
	details, err := Resolve(&RawDocument{FullText: "irrelevant text"})
	require.NoError(t, err)

	assert.Equal(t, "N/A", details["assessment_year"])
	assert.Equal(t, 0.0, details["standard_deduction"])
	assert.Equal(t, "0", details["gross_salary"])
	assert.Equal(t, "0", details["hra"])
	assert.Equal(t, "0", details["section_80E"])
	assert.Equal(t, "0", details["additional_cess_info"])
}

func TestResolveTextFields(t *testing.T) {
	doc := &RawDocument{
		FullText: "FORM NO. 16\nAssessment Year 2023-24\nStandard Deduction Yes\n",
	}

	details, err := Resolve(doc)
	require.NoError(t, err)

	assert.Equal(t, "2023-24", details["assessment_year"])
	assert.Equal(t, 50000.0, details["standard_deduction"])
}

func TestResolveTableLabelOffset(t *testing.T) {
	doc := &RawDocument{
		Tables: []Table{{
			{"House rent allowance under section 10(13A)", "12,000"},
			{"Tax on employment under section 16(iii)", "2,400"},
		}},
	}

	details, err := Resolve(doc)
	require.NoError(t, err)

	assert.Equal(t, "12000", details["hra"])
	assert.Equal(t, "2400", details["professional_tax"])
	assert.Equal(t, "0", details["section_80E"])
}

func TestResolveWrappedLabel(t *testing.T) {
	// pdfplumber-style extraction keeps the line wrap inside the cell.
	doc := &RawDocument{
		Tables: []Table{{
			{"Deduction in respect of health insurance premia under section\n80D", "", "", "", "", "", "", "", "25,000"},
		}},
	}

	details, err := Resolve(doc)
	require.NoError(t, err)

	assert.Equal(t, "25000", details["section_80D"])
}

func TestResolveOffsetPastRowEnd(t *testing.T) {
	doc := &RawDocument{
		Tables: []Table{{
			{"Rebate under section 87A, if applicable", "12,500"},
		}},
	}

	details, err := Resolve(doc)
	require.NoError(t, err)

	// Offset 5 runs past the end of the row; the default stands.
	assert.Equal(t, "0", details["rebate_87A"])
}

func TestResolveEmptyCellAtOffset(t *testing.T) {
	doc := &RawDocument{
		Tables: []Table{{
			{"House rent allowance under section 10(13A)", ""},
		}},
	}

	details, err := Resolve(doc)
	require.NoError(t, err)

	assert.Equal(t, "0", details["hra"])
}

func TestResolveFirstMatchWins(t *testing.T) {
	doc := &RawDocument{
		Tables: []Table{
			{
				{"House rent allowance under section 10(13A)", "12,000"},
			},
			{
				{"House rent allowance under section 10(13A)", "99,999"},
			},
		},
	}

	details, err := Resolve(doc)
	require.NoError(t, err)

	assert.Equal(t, "12000", details["hra"])
}

func TestResolveGrossSalary(t *testing.T) {
	doc := &RawDocument{
		Tables: []Table{{
			{"Gross Salary", ""},
			{"Salary as per provisions contained in section 17(1)", "8,00,000"},
			{"Total", "", "8,50,000"},
		}},
	}

	details, err := Resolve(doc)
	require.NoError(t, err)

	assert.Equal(t, "850000", details["gross_salary"])
}

func TestResolveGrossSalaryTotalBeforeSection(t *testing.T) {
	doc := &RawDocument{
		Tables: []Table{{
			{"Total", "", "1,23,456"},
			{"Gross Salary", ""},
		}},
	}

	details, err := Resolve(doc)
	require.NoError(t, err)

	// A Total row ahead of the section header must not match.
	assert.Equal(t, "0", details["gross_salary"])
}

func TestResolveGrossSalarySameRow(t *testing.T) {
	doc := &RawDocument{
		Tables: []Table{{
			{"Gross Salary", "Total", "", "7,20,000"},
		}},
	}

	details, err := Resolve(doc)
	require.NoError(t, err)

	assert.Equal(t, "720000", details["gross_salary"])
}

func TestResolveGrossSalaryOnlyFirstTotal(t *testing.T) {
	doc := &RawDocument{
		Tables: []Table{{
			{"Gross Salary", ""},
			{"Total", "", "8,50,000"},
			{"Total", "", "1,00,000"},
		}},
	}

	details, err := Resolve(doc)
	require.NoError(t, err)

	assert.Equal(t, "850000", details["gross_salary"])
}

func TestResolveIdempotent(t *testing.T) {
	doc := &RawDocument{
		FullText: "Assessment Year 2023-24\nStandard Deduction Yes",
		Tables: []Table{{
			{"Gross Salary", ""},
			{"Total", "", "8,50,000"},
			{"House rent allowance under section 10(13A)", "12,000"},
			{"Deduction in respect of interest on deposits in savings account under section 80TTA", "", "", "", "", "", "", "", "", "10,000"},
		}},
	}

	first, err := Resolve(doc)
	require.NoError(t, err)
	second, err := Resolve(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "10000", first["section_80TTA"])
}

func TestResolvePopulatesEveryField(t *testing.T) {
	details, err := Resolve(&RawDocument{})
	require.NoError(t, err)

	fields := []string{
		"assessment_year", "gross_salary", "hra", "travel_allowance",
		"gratuity", "leave_encashment", "standard_deduction",
		"professional_tax", "other_income", "section_80C", "section_80CCC",
		"section_80D", "section_80E", "section_80G", "section_80TTA",
		"rebate_87A", "additional_cess_info",
	}
	for _, f := range fields {
		assert.Contains(t, details, f)
	}
	assert.Len(t, details, len(fields))
}
