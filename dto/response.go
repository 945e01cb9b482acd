package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// UploadResponse echoes the extracted tax details after a successful upload
type UploadResponse struct {
	Message    string     `json:"message"`
	TaxDetails TaxDetails `json:"tax_details"`
}

// GenerateResponse wraps the advice text returned by the model
type GenerateResponse struct {
	Response string `json:"response"`
}

// SaveResponseResponse echoes the stored tax comparison document
type SaveResponseResponse struct {
	Message       string        `json:"message"`
	TaxComparison TaxComparison `json:"tax_comparison"`
}
