package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/janm-comcon/stdtext/artifacts"
	"github.com/janm-comcon/stdtext/server/middleware"
	"github.com/janm-comcon/stdtext/server/services"
)

// ArtifactsHandler serves artifact reload and status requests.
type ArtifactsHandler struct {
	artifactService *services.ArtifactService
}

// NewArtifactsHandler creates the handler.
func NewArtifactsHandler(artifactService *services.ArtifactService) *ArtifactsHandler {
	return &ArtifactsHandler{artifactService: artifactService}
}

// ReloadRequest names the artifact files to load. Absent fields keep the
// active snapshot's paths.
type ReloadRequest struct {
	CorpusPath        string `json:"corpus_path,omitempty" example:"artifacts/corpus_index.json"`
	DictionaryPath    string `json:"dictionary_path,omitempty" example:"artifacts/dictionary.txt"`
	AbbreviationsPath string `json:"abbreviations_path,omitempty" example:"artifacts/abbreviations.json"`
	GazetteerPath     string `json:"gazetteer_path,omitempty" example:"artifacts/gazetteer.txt"`
}

// SnapshotResponse describes the active artifact snapshot.
type SnapshotResponse struct {
	ModelVersion string `json:"model_version" example:"v1"`
	LoadedAt     string `json:"loaded_at" example:"2026-08-01T10:00:00Z"`
	Rows         int    `json:"rows" example:"125000"`
	SpellMode    string `json:"spell_mode" example:"primary"`
}

// HandleReload swaps in a freshly loaded artifact snapshot.
// @Summary Reload artifacts
// @Description Builds a complete new snapshot from the given files and atomically swaps it in. Absent fields reuse the active snapshot's paths. Any load failure leaves the active snapshot serving and returns the offending file and stage.
// @Tags artifacts
// @Accept json
// @Produce json
// @Param request body ReloadRequest true "Artifact files to load"
// @Success 200 {object} SnapshotResponse "New active snapshot"
// @Failure 422 {object} middleware.ErrorResponse "Artifact load failure"
// @Router /artifacts/reload [post]
func (h *ArtifactsHandler) HandleReload(c *gin.Context) {
	var req ReloadRequest
	if !BindJSONBody(c, &req) {
		return
	}

	info, err := h.artifactService.Reload(c.Request.Context(), artifacts.Paths{
		CorpusIndex:   req.CorpusPath,
		Dictionary:    req.DictionaryPath,
		Abbreviations: req.AbbreviationsPath,
		Gazetteer:     req.GazetteerPath,
	})
	if err != nil {
		middleware.HandleGinError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, snapshotResponse(info))
}

// HandleStatus describes the active snapshot.
// @Summary Artifact snapshot status
// @Description Reports the model version, row count, load time and spell engine mode of the active snapshot.
// @Tags artifacts
// @Produce json
// @Success 200 {object} SnapshotResponse "Active snapshot"
// @Failure 503 {object} middleware.ErrorResponse "Artifacts not loaded"
// @Router /artifacts/status [get]
func (h *ArtifactsHandler) HandleStatus(c *gin.Context) {
	info, err := h.artifactService.Current(c.Request.Context())
	if err != nil {
		middleware.HandleGinError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, snapshotResponse(info))
}

func snapshotResponse(info *services.SnapshotInfo) SnapshotResponse {
	return SnapshotResponse{
		ModelVersion: info.ModelVersion,
		LoadedAt:     info.LoadedAt.Format(time.RFC3339),
		Rows:         info.Rows,
		SpellMode:    info.SpellMode,
	}
}
