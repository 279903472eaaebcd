package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janm-comcon/stdtext/server/middleware"
	"github.com/janm-comcon/stdtext/server/services"
	"github.com/janm-comcon/stdtext/style"
)

// SimilarityHandler serves the corpus style lookup endpoint.
type SimilarityHandler struct {
	similarityService *services.SimilarityService
}

// NewSimilarityHandler creates the handler.
func NewSimilarityHandler(similarityService *services.SimilarityService) *SimilarityHandler {
	return &SimilarityHandler{similarityService: similarityService}
}

// SimilarRequest is the request body for the similar endpoint.
type SimilarRequest struct {
	Text string `json:"text" example:"levering aarhus"`
	TopK int    `json:"top_k,omitempty" example:"5"`
}

// SimilarResponse lists the nearest corpus lines, best first.
type SimilarResponse struct {
	Query        string        `json:"query" example:"levering aarhus"`
	Matches      []style.Match `json:"matches"`
	ModelVersion string        `json:"model_version" example:"v1"`
}

// HandleSimilar finds the corpus lines closest to the query.
// @Summary Find stylistically similar corpus lines
// @Description Ranks the historical corpus lines by character n-gram cosine similarity to the query. top_k zero selects the configured default. An empty corpus yields an empty match list.
// @Tags similarity
// @Accept json
// @Produce json
// @Param request body SimilarRequest true "Query line"
// @Success 200 {object} SimilarResponse "Nearest corpus lines"
// @Failure 400 {object} middleware.ErrorResponse "Invalid request"
// @Failure 503 {object} middleware.ErrorResponse "Artifacts not loaded"
// @Router /similar [post]
func (h *SimilarityHandler) HandleSimilar(c *gin.Context) {
	var req SimilarRequest
	if !BindJSONBody(c, &req) {
		return
	}

	result, err := h.similarityService.FindSimilar(c.Request.Context(), req.Text, req.TopK)
	if err != nil {
		middleware.HandleGinError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, SimilarResponse{
		Query:        result.Query,
		Matches:      result.Matches,
		ModelVersion: result.ModelVersion,
	})
}
