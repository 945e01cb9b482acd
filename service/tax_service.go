package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sh-sahil/emp-repo/dto"
	"github.com/sh-sahil/emp-repo/utils/form16"
)

// UserStore is the slice of the persistence gateway the services need for
// account lookups and back-references.
type UserStore interface {
	GetUser(ctx context.Context, id string) (*dto.User, error)
	LinkTaxDetails(ctx context.Context, userID, detailsID string) error
	LinkTaxComparison(ctx context.Context, userID, comparisonID string) error
}

type TaxDetailsStore interface {
	HasForUser(ctx context.Context, userID string) (bool, error)
	Insert(ctx context.Context, userID string, details dto.TaxDetails) (string, error)
	ListAll(ctx context.Context) ([]dto.TaxDetails, error)
}

type TaxService struct {
	users     UserStore
	details   TaxDetailsStore
	processor PDFProcessor
	uploadDir string
}

func NewTaxService(users UserStore, details TaxDetailsStore, processor PDFProcessor, uploadDir string) *TaxService {
	return &TaxService{
		users:     users,
		details:   details,
		processor: processor,
		uploadDir: uploadDir,
	}
}

// ProcessUpload runs the upload pipeline: duplicate guard, archive the raw
// PDF, extract, resolve, persist, link. A user may hold at most one tax
// detail document; the first upload wins and later ones are rejected.
func (s *TaxService) ProcessUpload(ctx context.Context, userID, filename string, pdfData []byte) (dto.TaxDetails, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TaxDetailsID != nil {
		return nil, dto.ErrDuplicateSubmission
	}

	// The check-then-insert is not atomic across concurrent uploads for
	// one user; the store's unique index catches the losing request.
	has, err := s.details.HasForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, dto.ErrDuplicateSubmission
	}

	if err := s.archiveUpload(filename, pdfData); err != nil {
		return nil, err
	}

	doc, err := s.processor.ExtractDocument(pdfData)
	if err != nil {
		return nil, err
	}

	details, err := form16.Resolve(doc)
	if err != nil {
		return nil, err
	}

	id, err := s.details.Insert(ctx, userID, details)
	if err != nil {
		return nil, err
	}
	if err := s.users.LinkTaxDetails(ctx, userID, id); err != nil {
		return nil, err
	}

	log.Printf("Stored tax details %s for user %s", id, userID)
	return details, nil
}

// ListTaxDetails returns every stored detail document.
func (s *TaxService) ListTaxDetails(ctx context.Context) ([]dto.TaxDetails, error) {
	all, err := s.details.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, dto.ErrNoTaxDetails
	}
	return all, nil
}

func (s *TaxService) archiveUpload(filename string, pdfData []byte) error {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(s.uploadDir, filepath.Base(filename))
	if err := os.WriteFile(path, pdfData, 0o644); err != nil {
		return fmt.Errorf("save upload: %w", err)
	}
	return nil
}
