package services

import (
	"context"
	"errors"
	"time"

	"github.com/janm-comcon/stdtext/artifacts"
	apperrors "github.com/janm-comcon/stdtext/server/errors"
)

// SnapshotInfo describes one loaded artifact snapshot.
type SnapshotInfo struct {
	ModelVersion string
	LoadedAt     time.Time
	Rows         int
	SpellMode    string
	Paths        artifacts.Paths
}

// ArtifactService wraps the artifact store for reload and status
// requests.
type ArtifactService struct {
	store *artifacts.Store
}

// NewArtifactService creates the service.
func NewArtifactService(store *artifacts.Store) *ArtifactService {
	return &ArtifactService{store: store}
}

// Reload builds a fresh snapshot from the given paths (empty fields keep
// the active snapshot's path) and swaps it in. Any load failure leaves
// the active snapshot serving and maps to a 422 so the caller can fix
// the offending file and retry.
func (as *ArtifactService) Reload(ctx context.Context, paths artifacts.Paths) (*SnapshotInfo, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	snapshot, err := as.store.Reload(paths)
	if err != nil {
		var loadErr *artifacts.LoadError
		if errors.As(err, &loadErr) {
			return nil, apperrors.NewUnprocessableError(loadErr.Error(), err)
		}
		return nil, apperrors.NewInternalError("artifact reload failed", err)
	}

	return snapshotInfo(snapshot), nil
}

// Current describes the active snapshot.
func (as *ArtifactService) Current(ctx context.Context) (*SnapshotInfo, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	snapshot := as.store.Current()
	if snapshot == nil {
		return nil, apperrors.NewServiceUnavailableError("artifacts are not loaded", nil)
	}
	return snapshotInfo(snapshot), nil
}

func snapshotInfo(s *artifacts.Snapshot) *SnapshotInfo {
	return &SnapshotInfo{
		ModelVersion: s.ModelVersion(),
		LoadedAt:     s.LoadedAt,
		Rows:         s.Rows(),
		SpellMode:    string(s.SpellMode()),
		Paths:        s.Paths,
	}
}
