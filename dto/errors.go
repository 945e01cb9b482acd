package dto

import "errors"

// Error taxonomy surfaced by the service layer. Handlers map these to
// HTTP status codes; anything unrecognized is treated as a 500.
var (
	ErrExtraction          = errors.New("could not read uploaded document")
	ErrDuplicateSubmission = errors.New("tax details already uploaded")
	ErrInvalidModelOutput  = errors.New("no valid JSON found in model response")
	ErrUserNotFound        = errors.New("user not found")
	ErrNoTaxDetails        = errors.New("no tax details found")
)
