package form16

import "regexp"

// TextRule pulls a scalar field out of the concatenated page text with a
// single-capture-group pattern.
type TextRule struct {
	Field   string
	Pattern *regexp.Regexp
	Default string
}

// TableRule reads the cell a fixed number of columns after an exact label
// match anywhere in the extracted tables. The offsets are tied to the
// standard Form-16 (Part B) table rendering; other layouts will fall back
// to the defaults rather than fail.
type TableRule struct {
	Field   string
	Label   string
	Offset  int
	Default string
}

var textRules = []TextRule{
	{
		Field:   "assessment_year",
		Pattern: regexp.MustCompile(`Assessment Year\s+(\d{4}-\d{2})`),
		Default: "N/A",
	},
}

// Labels are compared after whitespace collapsing, so entries wrapped
// across lines in the PDF layout are written here on one line.
var tableRules = []TableRule{
	{Field: "hra", Label: "House rent allowance under section 10(13A)", Offset: 1, Default: "0"},
	{Field: "travel_allowance", Label: "Travel concession or assistance under section 10(5)", Offset: 1, Default: "0"},
	{Field: "gratuity", Label: "Death-cum-retirement gratuity under section 10(10)", Offset: 1, Default: "0"},
	{Field: "leave_encashment", Label: "Cash equivalent of leave salary encashment under section 10 (10AA)", Offset: 1, Default: "0"},
	{Field: "professional_tax", Label: "Tax on employment under section 16(iii)", Offset: 1, Default: "0"},
	{Field: "other_income", Label: "Total amount of other income reported by the employee [7(a)+7(b)]", Offset: 2, Default: "0"},
	{Field: "section_80C", Label: "Deduction in respect of life insurance premia, contributions to provident fund etc. under section 80C", Offset: 2, Default: "0"},
	{Field: "section_80CCC", Label: "Deduction in respect of contribution to certain pension funds under section 80CCC", Offset: 2, Default: "0"},
	{Field: "section_80D", Label: "Deduction in respect of health insurance premia under section 80D", Offset: 8, Default: "0"},
	{Field: "section_80E", Label: "Deduction in respect of interest on loan taken for higher education under section 80E", Offset: 8, Default: "0"},
	{Field: "section_80G", Label: "Total Deduction in respect of donations to certain funds, charitable institutions, etc. under section 80G", Offset: 9, Default: "0"},
	{Field: "section_80TTA", Label: "Deduction in respect of interest on deposits in savings account under section 80TTA", Offset: 9, Default: "0"},
	{Field: "rebate_87A", Label: "Rebate under section 87A, if applicable", Offset: 5, Default: "0"},
	{Field: "additional_cess_info", Label: "Health and education cess", Offset: 5, Default: "0"},
}

// The gross salary figure is the one value not local to its label row: it
// sits in a "Total" row some rows below the section header.
const (
	grossSalaryField = "gross_salary"
	grossSalaryLabel = "Gross Salary"
	grossTotalLabel  = "Total"
	grossTotalOffset = 2
	grossDefault     = "0"
)

var standardDeductionRe = regexp.MustCompile(`Standard Deduction\s+Yes`)
