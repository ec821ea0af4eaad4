package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/satyam3824/content-repurposer/pkg/repurpose"
)

// Repurposer is the slice of the transformation service the handler needs.
type Repurposer interface {
	Repurpose(ctx context.Context, content string, format repurpose.Format, params repurpose.Params) (string, error)
}

type RepurposeHandler struct {
	service   Repurposer
	modelName string
}

func NewRepurposeHandler(service Repurposer, modelName string) *RepurposeHandler {
	return &RepurposeHandler{service: service, modelName: modelName}
}

func (h *RepurposeHandler) Repurpose(c *gin.Context) {
	var req RepurposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	format, err := repurpose.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown format: " + req.Format})
		return
	}

	params := repurpose.Params{
		Audience:  req.Audience,
		Tone:      req.Tone,
		Length:    req.Length,
		NumSlides: req.NumSlides,
	}

	result, err := h.service.Repurpose(c.Request.Context(), req.Content, format, params)
	if err != nil {
		status, message := mapServiceError(err)
		if status >= http.StatusInternalServerError {
			slog.Error("error repurposing content", "format", format, "error", err)
		}
		c.JSON(status, gin.H{"error": message})
		return
	}

	res := RepurposeResponse{
		Format:    string(format),
		Result:    result,
		ModelUsed: h.modelName,
	}
	if format == repurpose.FormatTweetThread {
		res.Tweets = strings.Split(result, "\n\n")
	}

	c.JSON(http.StatusOK, res)
}

func (h *RepurposeHandler) GetFormats(c *gin.Context) {
	var res []FormatResponse
	for _, f := range repurpose.Formats() {
		res = append(res, FormatResponse{
			Name:        string(f),
			DisplayName: f.DisplayName(),
			Available:   f.Available(),
			Defaults:    repurpose.Defaults(f),
		})
	}
	c.JSON(http.StatusOK, res)
}

func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, repurpose.ErrEmptyContent):
		return http.StatusBadRequest, "Content is empty"
	case errors.Is(err, repurpose.ErrUnsupportedFormat):
		return http.StatusBadRequest, "Format is not available"
	case errors.Is(err, repurpose.ErrInvalidParam):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, repurpose.ErrMalformedOutput):
		return http.StatusBadGateway, "Model returned malformed output"
	case errors.Is(err, repurpose.ErrRenderFailed):
		return http.StatusInternalServerError, "Prompt render error"
	default:
		return http.StatusBadGateway, "Model backend error"
	}
}
