package dto

import "time"

// TaxDetails is the flat field map produced by the Form-16 resolver.
// Values are decimal strings with thousands separators stripped, except
// standard_deduction which is resolved as a numeric constant.
type TaxDetails map[string]any

// User is the account record the upload guard reads. The tax detail and
// comparison ids are back-references filled in after the first upload and
// the first saved advice respectively.
type User struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Company         string  `json:"company,omitempty"`
	TaxDetailsID    *string `json:"tax_details_id"`
	TaxComparisonID *string `json:"tax_comparison_id"`
}

// TaxComparison is the model-generated advice stored per user.
// At most one exists per user; a second save replaces the first.
type TaxComparison struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	Response    string    `json:"response"`
	GeneratedAt time.Time `json:"generatedAt"`
}
