package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sh-sahil/emp-repo/dto"
	"github.com/sh-sahil/emp-repo/service"
)

type TaxHandler struct {
	taxService *service.TaxService
}

func NewTaxHandler(taxService *service.TaxService) *TaxHandler {
	return &TaxHandler{
		taxService: taxService,
	}
}

// Upload handles the POST /upload endpoint
func (h *TaxHandler) Upload(c *gin.Context) {
	log.Println("Received Form-16 upload request")

	userID := c.PostForm("userId")
	if userID == "" {
		sendError(c, http.StatusBadRequest, "UPLOAD_FAILED", "userId is required", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "UPLOAD_FAILED", "No file uploaded", err)
		return
	}
	if fileHeader.Filename == "" {
		sendError(c, http.StatusBadRequest, "UPLOAD_FAILED", "No selected file", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		sendError(c, http.StatusBadRequest, "UPLOAD_FAILED", "Failed to open uploaded file", err)
		return
	}
	defer f.Close()

	pdfData, err := io.ReadAll(f)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to read uploaded file", err)
		return
	}

	details, err := h.taxService.ProcessUpload(c.Request.Context(), userID, fileHeader.Filename, pdfData)
	if err != nil {
		sendError(c, statusFor(err), "UPLOAD_FAILED", "Failed to process Form-16", err)
		return
	}

	log.Printf("Form-16 processed for user %s", userID)
	c.JSON(http.StatusOK, dto.UploadResponse{
		Message:    "PDF processed successfully",
		TaxDetails: details,
	})
}

// ListTaxDetails handles the GET /tax-details endpoint
func (h *TaxHandler) ListTaxDetails(c *gin.Context) {
	all, err := h.taxService.ListTaxDetails(c.Request.Context())
	if err != nil {
		sendError(c, statusFor(err), "TAX_DETAILS_FAILED", "Failed to list tax details", err)
		return
	}

	c.JSON(http.StatusOK, all)
}
