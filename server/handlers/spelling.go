package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janm-comcon/stdtext/server/middleware"
	"github.com/janm-comcon/stdtext/server/services"
)

// SpellingHandler serves the standalone spelling endpoint.
type SpellingHandler struct {
	spellingService *services.SpellingService
}

// NewSpellingHandler creates the handler.
func NewSpellingHandler(spellingService *services.SpellingService) *SpellingHandler {
	return &SpellingHandler{spellingService: spellingService}
}

// SpellingRequest is the request body for the spelling endpoint.
type SpellingRequest struct {
	Text string `json:"text" example:"leverng af dør"`
}

// SpellingResponse lists the corrected line and every rewritten word.
type SpellingResponse struct {
	Original    string                    `json:"original" example:"leverng af dør"`
	Corrected   string                    `json:"corrected" example:"levering af dør"`
	Corrections []services.WordCorrection `json:"corrections"`
	Mode        string                    `json:"mode" example:"primary"`
}

// HandleSpelling spell-checks one line without the rest of the pipeline.
// @Summary Spell-check an invoice line
// @Description Corrects the word tokens of the line against the dictionary. Gazetteer names and known abbreviations are protected and never rewritten. The mode field reports whether the primary dictionary engine or the corpus fallback served the request.
// @Tags spelling
// @Accept json
// @Produce json
// @Param request body SpellingRequest true "Line to spell-check"
// @Success 200 {object} SpellingResponse "Corrections"
// @Failure 400 {object} middleware.ErrorResponse "Invalid request"
// @Failure 503 {object} middleware.ErrorResponse "Artifacts not loaded"
// @Router /spelling [post]
func (h *SpellingHandler) HandleSpelling(c *gin.Context) {
	var req SpellingRequest
	if !BindJSONBody(c, &req) {
		return
	}

	result, err := h.spellingService.CorrectSpelling(c.Request.Context(), req.Text)
	if err != nil {
		middleware.HandleGinError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, SpellingResponse{
		Original:    result.Original,
		Corrected:   result.Corrected,
		Corrections: result.Corrections,
		Mode:        result.Mode,
	})
}
