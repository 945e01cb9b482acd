package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sh-sahil/emp-repo/client"
	"github.com/sh-sahil/emp-repo/dto"
	"github.com/sh-sahil/emp-repo/utils"
)

type ResponseStore interface {
	Upsert(ctx context.Context, userID, response string, generatedAt time.Time) (string, bool, error)
}

// AdviceService forwards prompts to the model collaborator and persists
// the resulting regime-comparison advice, one document per user.
type AdviceService struct {
	model       client.ModelClient
	responses   ResponseStore
	users       UserStore
	requireJSON bool
}

func NewAdviceService(model client.ModelClient, responses ResponseStore, users UserStore, requireJSON bool) *AdviceService {
	return &AdviceService{
		model:       model,
		responses:   responses,
		users:       users,
		requireJSON: requireJSON,
	}
}

// Generate asks the model for advice and strips a leading echo of the
// prompt from its output.
func (s *AdviceService) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate advice: %w", err)
	}
	return utils.StripPromptEcho(prompt, out), nil
}

// SaveResponse upserts the advice for a user: the second save replaces
// the first and keeps the original document id. When the remote-API
// variant is active the text must embed one parseable JSON object, and
// only that object is stored.
func (s *AdviceService) SaveResponse(ctx context.Context, userID, response string) (*dto.TaxComparison, error) {
	text := response
	if s.requireJSON {
		extracted, ok := utils.ExtractJSONObject(response)
		if !ok {
			return nil, dto.ErrInvalidModelOutput
		}
		text = extracted
	}

	generatedAt := time.Now().UTC()
	id, replaced, err := s.responses.Upsert(ctx, userID, text, generatedAt)
	if err != nil {
		return nil, err
	}
	if !replaced {
		if err := s.users.LinkTaxComparison(ctx, userID, id); err != nil {
			return nil, err
		}
	}

	log.Printf("Saved tax comparison %s for user %s (replaced=%v)", id, userID, replaced)
	return &dto.TaxComparison{
		ID:          id,
		UserID:      userID,
		Response:    text,
		GeneratedAt: generatedAt,
	}, nil
}
