package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janm-comcon/stdtext/normalization"
	"github.com/janm-comcon/stdtext/server/middleware"
	"github.com/janm-comcon/stdtext/server/services"
	"github.com/janm-comcon/stdtext/style"
)

// NormalizationHandler serves the line normalization endpoints.
type NormalizationHandler struct {
	normalizationService *services.NormalizationService
}

// NewNormalizationHandler creates the handler.
func NewNormalizationHandler(normalizationService *services.NormalizationService) *NormalizationHandler {
	return &NormalizationHandler{normalizationService: normalizationService}
}

// NormalizeRequest is the request body for the normalize endpoints.
type NormalizeRequest struct {
	Text   string `json:"text" example:"leverng 2 stk rør til aarhus"`
	TopK   int    `json:"top_k,omitempty" example:"5"`
	Polish bool   `json:"polish,omitempty" example:"false"`
}

// NormalizeResponse is the normalized line plus optional style matches.
type NormalizeResponse struct {
	FinalText    string        `json:"final_text" example:"LEVERING 2 STK RØR TIL AARHUS"`
	Matches      []style.Match `json:"matches,omitempty"`
	ModelVersion string        `json:"model_version" example:"v1"`
	Polished     bool          `json:"polished,omitempty"`
}

// NormalizeDebugResponse additionally carries the full stage trace.
type NormalizeDebugResponse struct {
	NormalizeResponse
	Stages normalization.Stages `json:"stages"`
}

// HandleNormalize normalizes one invoice line.
// @Summary Normalize an invoice line
// @Description Runs the line through the full pipeline: cleanup, entity and abbreviation scrubbing, count extraction, spell correction, canonical rewrite and uppercase. Set top_k to also get the stylistically nearest corpus lines.
// @Tags normalization
// @Accept json
// @Produce json
// @Param request body NormalizeRequest true "Line to normalize"
// @Success 200 {object} NormalizeResponse "Normalized line"
// @Failure 400 {object} middleware.ErrorResponse "Invalid request"
// @Failure 503 {object} middleware.ErrorResponse "Artifacts not loaded"
// @Router /normalize [post]
func (h *NormalizationHandler) HandleNormalize(c *gin.Context) {
	var req NormalizeRequest
	if !BindJSONBody(c, &req) {
		return
	}

	result, err := h.normalizationService.Normalize(c.Request.Context(), req.Text, services.NormalizeOptions{
		TopK:   req.TopK,
		Polish: req.Polish,
	})
	if err != nil {
		middleware.HandleGinError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, NormalizeResponse{
		FinalText:    result.FinalText,
		Matches:      result.Matches,
		ModelVersion: result.ModelVersion,
		Polished:     result.Polished,
	})
}

// HandleNormalizeDebug normalizes one line and returns every stage.
// @Summary Normalize an invoice line with the stage trace
// @Description Same pipeline as /normalize, with every intermediate stage, the matched rewrite rule and the protected placeholder spans in the response.
// @Tags normalization
// @Accept json
// @Produce json
// @Param request body NormalizeRequest true "Line to normalize"
// @Success 200 {object} NormalizeDebugResponse "Normalized line with stages"
// @Failure 400 {object} middleware.ErrorResponse "Invalid request"
// @Failure 503 {object} middleware.ErrorResponse "Artifacts not loaded"
// @Router /normalize/debug [post]
func (h *NormalizationHandler) HandleNormalizeDebug(c *gin.Context) {
	var req NormalizeRequest
	if !BindJSONBody(c, &req) {
		return
	}

	result, err := h.normalizationService.Normalize(c.Request.Context(), req.Text, services.NormalizeOptions{
		TopK:   req.TopK,
		Polish: req.Polish,
	})
	if err != nil {
		middleware.HandleGinError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, NormalizeDebugResponse{
		NormalizeResponse: NormalizeResponse{
			FinalText:    result.FinalText,
			Matches:      result.Matches,
			ModelVersion: result.ModelVersion,
			Polished:     result.Polished,
		},
		Stages: result.Stages,
	})
}
