package artifacts

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Store holds the process-wide active snapshot. Requests read the pointer
// once and keep that snapshot for their whole lifetime; Reload builds the
// replacement in isolation and swaps the pointer atomically, so readers
// see either the fully-old or the fully-new artifact set, never a mix.
type Store struct {
	active atomic.Pointer[Snapshot]
	opts   LoadOptions

	// reloadMu serializes reloads; concurrent readers are lock-free.
	reloadMu sync.Mutex
}

// NewStore creates an empty store. Init must succeed before the store
// serves requests.
func NewStore(opts LoadOptions) *Store {
	return &Store{opts: opts}
}

// Init performs the startup load. A failed Init leaves the store empty;
// callers treat that as fatal.
func (s *Store) Init(paths Paths) error {
	snapshot, err := Load(paths, s.opts)
	if err != nil {
		return err
	}
	s.active.Store(snapshot)

	slog.Info("artifacts loaded",
		"component", "artifacts",
		"model_version", snapshot.ModelVersion(),
		"rows", snapshot.Rows(),
		"vocabulary_terms", snapshot.Index.VocabularySize(),
		"dictionary_words", dictionaryLen(snapshot),
		"abbreviations", len(snapshot.Abbreviations),
		"gazetteer_names", len(snapshot.Gazetteer),
		"spell_mode", snapshot.SpellMode(),
	)
	return nil
}

// Current returns the active snapshot, nil before a successful Init.
func (s *Store) Current() *Snapshot {
	return s.active.Load()
}

// Reload builds a new snapshot and swaps it in. Fields left empty in
// paths reuse the active snapshot's paths. On any load failure the active
// snapshot stays in place and keeps serving.
func (s *Store) Reload(paths Paths) (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	if current := s.active.Load(); current != nil {
		paths = current.Paths.Merge(paths)
	}

	snapshot, err := Load(paths, s.opts)
	if err != nil {
		return nil, err
	}
	s.active.Store(snapshot)

	slog.Info("artifacts reloaded",
		"component", "artifacts",
		"model_version", snapshot.ModelVersion(),
		"rows", snapshot.Rows(),
		"spell_mode", snapshot.SpellMode(),
	)
	return snapshot, nil
}

func dictionaryLen(s *Snapshot) int {
	if s.Dictionary == nil {
		return 0
	}
	return s.Dictionary.Len()
}
