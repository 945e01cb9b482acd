package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sh-sahil/emp-repo/dto"
	"github.com/sh-sahil/emp-repo/service"
)

type AdviceHandler struct {
	adviceService *service.AdviceService
}

func NewAdviceHandler(adviceService *service.AdviceService) *AdviceHandler {
	return &AdviceHandler{
		adviceService: adviceService,
	}
}

// Generate handles the POST /generate endpoint
func (h *AdviceHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "GENERATE_FAILED", "Invalid request body", err)
		return
	}

	log.Printf("Generating advice for a %d character prompt", len(req.Prompt))

	response, err := h.adviceService.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		sendError(c, statusFor(err), "GENERATE_FAILED", "Failed to generate advice", err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{Response: response})
}

// SaveResponse handles the POST /save-response endpoint
func (h *AdviceHandler) SaveResponse(c *gin.Context) {
	var req dto.SaveResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "SAVE_RESPONSE_FAILED", "Invalid request body", err)
		return
	}

	comparison, err := h.adviceService.SaveResponse(c.Request.Context(), req.UserID, req.Response)
	if err != nil {
		sendError(c, statusFor(err), "SAVE_RESPONSE_FAILED", "Failed to save response", err)
		return
	}

	c.JSON(http.StatusOK, dto.SaveResponseResponse{
		Message:       "Response saved successfully",
		TaxComparison: *comparison,
	})
}
