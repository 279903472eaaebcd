package services

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/janm-comcon/stdtext/artifacts"
	"github.com/janm-comcon/stdtext/normalization"
	"github.com/janm-comcon/stdtext/normalization/algorithms"
	apperrors "github.com/janm-comcon/stdtext/server/errors"
)

// assertAppErrorCode fails unless err is an AppError with the given
// status code.
func assertAppErrorCode(t *testing.T, err error, wantCode int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error with status %d, got nil", wantCode)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected an AppError, got %T: %v", err, err)
	}
	if appErr.Code != wantCode {
		t.Errorf("status = %d, want %d (%v)", appErr.Code, wantCode, err)
	}
}

// newTestStore builds a store over a complete artifact fixture set: a
// small Danish dictionary, one gazetteer city, one abbreviation, and a
// corpus index covering the given rows.
func newTestStore(t *testing.T, rows ...string) *artifacts.Store {
	t.Helper()
	dir := t.TempDir()

	dictPath := filepath.Join(dir, "dictionary.txt")
	if err := artifacts.WriteDictionary(dictPath, map[string]int{
		"levering":  40,
		"montering": 25,
		"afprøvet":  18,
		"ok":        35,
		"fundet":    12,
		"orden":     12,
		"og":        60,
		"i":         55,
		"af":        50,
		"til":       48,
		"stk":       30,
		"kunde":     20,
		"dør":       15,
	}); err != nil {
		t.Fatalf("WriteDictionary: %v", err)
	}

	gazPath := filepath.Join(dir, "gazetteer.txt")
	if err := artifacts.WriteGazetteer(gazPath, []string{"Aarhus", "Odense"}); err != nil {
		t.Fatalf("WriteGazetteer: %v", err)
	}

	abbrPath := filepath.Join(dir, "abbreviations.json")
	if err := artifacts.WriteAbbreviations(abbrPath, map[string]string{"lev.": "levering"}); err != nil {
		t.Fatalf("WriteAbbreviations: %v", err)
	}

	if len(rows) == 0 {
		rows = []string{"LEVERING AARHUS 2 STK", "MONTERING AF DØR"}
	}
	indexPath := filepath.Join(dir, "corpus_index.json")
	if err := artifacts.WriteIndex(indexPath, testIndexArtifact(rows...)); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}

	store := artifacts.NewStore(artifacts.LoadOptions{})
	if err := store.Init(artifacts.Paths{
		CorpusIndex:   indexPath,
		Dictionary:    dictPath,
		Abbreviations: abbrPath,
		Gazetteer:     gazPath,
	}); err != nil {
		t.Fatalf("store.Init: %v", err)
	}
	return store
}

func testIndexArtifact(rows ...string) *artifacts.IndexArtifact {
	terms := make(map[string]int)
	var vocabulary []string
	for _, row := range rows {
		for _, gram := range algorithms.WordNGrams(strings.ToLower(row), 3, 5) {
			if _, ok := terms[gram]; !ok {
				terms[gram] = len(terms)
				vocabulary = append(vocabulary, gram)
			}
		}
	}
	idf := make([]float64, len(vocabulary))
	for i := range idf {
		idf[i] = 1.0
	}
	return &artifacts.IndexArtifact{
		SchemaVersion: artifacts.IndexSchemaVersion,
		ModelVersion:  "v1",
		NgramMin:      3,
		NgramMax:      5,
		Vocabulary:    vocabulary,
		IDF:           idf,
		Assignments:   make([]int, len(rows)),
		Rows:          rows,
	}
}

// testRules returns a rule engine with the canonical inspection phrase
// rule.
func testRules() *normalization.RuleEngine {
	return normalization.NewRuleEngine([]normalization.RewriteRule{
		{
			Name:      "inspection-ok",
			Pattern:   []string{"afprøvet", "ok"},
			Canonical: "afprøvet og fundet i orden.",
		},
	})
}
