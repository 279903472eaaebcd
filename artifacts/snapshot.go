package artifacts

import (
	"log/slog"
	"time"

	"github.com/janm-comcon/stdtext/normalization"
	"github.com/janm-comcon/stdtext/spell"
	"github.com/janm-comcon/stdtext/style"
)

// Paths names the artifact files a snapshot is built from.
type Paths struct {
	CorpusIndex   string `json:"corpus_path"`
	Dictionary    string `json:"dictionary_path"`
	Abbreviations string `json:"abbreviations_path"`
	Gazetteer     string `json:"gazetteer_path"`
}

// Merge overlays the non-empty fields of override onto p. Reload requests
// name only the artifacts they replace; the rest keep their current paths.
func (p Paths) Merge(override Paths) Paths {
	if override.CorpusIndex != "" {
		p.CorpusIndex = override.CorpusIndex
	}
	if override.Dictionary != "" {
		p.Dictionary = override.Dictionary
	}
	if override.Abbreviations != "" {
		p.Abbreviations = override.Abbreviations
	}
	if override.Gazetteer != "" {
		p.Gazetteer = override.Gazetteer
	}
	return p
}

// LoadOptions tunes the per-snapshot components built on top of the raw
// artifacts.
type LoadOptions struct {
	// SpellMaxEditDistance bounds correction candidates; zero selects the
	// engine defaults.
	SpellMaxEditDistance int
	// SpellCacheSize bounds the snapshot's correction cache; zero selects
	// spell.DefaultCacheSize.
	SpellCacheSize int
}

// Snapshot is one complete, immutable set of loaded artifacts plus the
// request-serving components derived from them. Requests hold the
// snapshot pointer they started with; a reload never mutates an existing
// snapshot.
type Snapshot struct {
	Dictionary    *spell.Dictionary // nil when no dictionary artifact is configured
	Abbreviations map[string]string
	Gazetteer     []string
	Index         *style.Index

	Scrubber *normalization.Scrubber
	Checker  *spell.Checker

	Paths    Paths
	LoadedAt time.Time
}

// ModelVersion returns the offline model version the corpus index carries.
func (s *Snapshot) ModelVersion() string {
	return s.Index.ModelVersion()
}

// Rows returns the number of historical corpus rows.
func (s *Snapshot) Rows() int {
	return s.Index.Size()
}

// SpellMode reports which correction engine this snapshot runs on.
func (s *Snapshot) SpellMode() spell.Mode {
	return s.Checker.Mode()
}

// Load builds a complete snapshot from the artifact files. Any load
// failure aborts the whole snapshot; a caller holding an older snapshot
// keeps serving it. An unconfigured or empty dictionary is not a load
// failure: the primary spell engine reports itself unavailable and the
// corpus-vocabulary fallback engine takes over, logged here.
func Load(paths Paths, opts LoadOptions) (*Snapshot, error) {
	index, err := LoadIndex(paths.CorpusIndex)
	if err != nil {
		return nil, err
	}

	dictionary, err := LoadDictionary(paths.Dictionary)
	if err != nil {
		return nil, err
	}

	abbreviations, err := LoadAbbreviations(paths.Abbreviations)
	if err != nil {
		return nil, err
	}

	gazetteer, err := LoadGazetteer(paths.Gazetteer)
	if err != nil {
		return nil, err
	}

	engine, mode, engineErr := spell.SelectEngine(dictionary, index.WordFrequencies(), opts.SpellMaxEditDistance)
	if engineErr != nil {
		slog.Warn("primary spell engine unavailable, using corpus fallback",
			"component", "artifacts",
			"dictionary_path", paths.Dictionary,
			"error", engineErr,
		)
	}

	return &Snapshot{
		Dictionary:    dictionary,
		Abbreviations: abbreviations,
		Gazetteer:     gazetteer,
		Index:         index,
		Scrubber:      normalization.NewScrubber(gazetteer, abbreviations),
		Checker:       spell.NewChecker(engine, mode, opts.SpellCacheSize),
		Paths:         paths,
		LoadedAt:      time.Now().UTC(),
	}, nil
}
