package artifacts

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/janm-comcon/stdtext/normalization/algorithms"
	"github.com/janm-comcon/stdtext/spell"
)

// testIndexArtifact builds a loadable corpus-index artifact whose
// vocabulary covers the given rows, flat idf, no clustering. Stands in
// for the offline model builder.
func testIndexArtifact(rows ...string) *IndexArtifact {
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
	return &IndexArtifact{
		SchemaVersion: IndexSchemaVersion,
		ModelVersion:  "v1",
		NgramMin:      3,
		NgramMax:      5,
		Vocabulary:    vocabulary,
		IDF:           idf,
		Assignments:   make([]int, len(rows)),
		Rows:          rows,
	}
}

func writeTestIndex(t *testing.T, dir string, artifact *IndexArtifact) string {
	t.Helper()
	path := filepath.Join(dir, "corpus_index.json")
	if err := WriteIndex(path, artifact); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}
	return path
}

func TestDictionary_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	counts := map[string]int{"levering": 12, "montering": 7, "stk": 7}

	if err := WriteDictionary(path, counts); err != nil {
		t.Fatalf("WriteDictionary: %v", err)
	}

	dict, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if dict.Len() != 3 {
		t.Errorf("Len = %d, want 3", dict.Len())
	}
	if dict.Frequency("levering") != 12 {
		t.Errorf("Frequency(levering) = %d, want 12", dict.Frequency("levering"))
	}
}

func TestDictionary_EmptyPathNotConfigured(t *testing.T) {
	dict, err := LoadDictionary("")
	if err != nil {
		t.Fatalf("LoadDictionary(\"\") error = %v", err)
	}
	if dict != nil {
		t.Error("an unconfigured dictionary must be nil")
	}
}

func TestDictionary_SchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	if err := os.WriteFile(path, []byte("#stdtext-dictionary v9\nlevering\t3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDictionary(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
	if loadErr.Stage != "dictionary" {
		t.Errorf("Stage = %q, want dictionary", loadErr.Stage)
	}
}

func TestDictionary_MalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	content := DictionaryHeader + "\nlevering\t3\nmontering twelve\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var loadErr *LoadError
	if _, err := LoadDictionary(path); !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
}

func TestDictionary_MissingFile(t *testing.T) {
	var loadErr *LoadError
	if _, err := LoadDictionary(filepath.Join(t.TempDir(), "absent.txt")); !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
}

func TestAbbreviations_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abbreviations.json")
	entries := map[string]string{"udv.": "udvendig", "indv.": "indvendig"}

	if err := WriteAbbreviations(path, entries); err != nil {
		t.Fatalf("WriteAbbreviations: %v", err)
	}

	loaded, err := LoadAbbreviations(path)
	if err != nil {
		t.Fatalf("LoadAbbreviations: %v", err)
	}
	if loaded["udv."] != "udvendig" || loaded["indv."] != "indvendig" {
		t.Errorf("loaded = %v", loaded)
	}
}

func TestAbbreviations_SchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abbreviations.json")
	if err := os.WriteFile(path, []byte(`{"schema_version":2,"entries":{"udv.":"udvendig"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	var loadErr *LoadError
	if _, err := LoadAbbreviations(path); !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
}

func TestGazetteer_RoundTripSortsAndDedupes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gazetteer.txt")
	if err := WriteGazetteer(path, []string{"Odense", "Aarhus", "Odense", " "}); err != nil {
		t.Fatalf("WriteGazetteer: %v", err)
	}

	names, err := LoadGazetteer(path)
	if err != nil {
		t.Fatalf("LoadGazetteer: %v", err)
	}
	if len(names) != 2 || names[0] != "Aarhus" || names[1] != "Odense" {
		t.Errorf("names = %v, want [Aarhus Odense]", names)
	}
}

func TestGazetteer_MissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gazetteer.txt")
	if err := os.WriteFile(path, []byte("Aarhus\nOdense\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var loadErr *LoadError
	if _, err := LoadGazetteer(path); !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
}

func TestIndex_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeTestIndex(t, dir, testIndexArtifact("LEVERING AF VARER", "KONTROL AF PUMPE"))

	index, err := LoadIndex(path)
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	if index.Size() != 2 {
		t.Errorf("Size = %d, want 2", index.Size())
	}
	if index.ModelVersion() != "v1" {
		t.Errorf("ModelVersion = %q, want v1", index.ModelVersion())
	}

	matches, err := index.Match("levering af varer", 1)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(matches) != 1 || matches[0].Text != "LEVERING AF VARER" {
		t.Errorf("matches = %v", matches)
	}
}

func TestIndex_SchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	artifact := testIndexArtifact("LEVERING AF VARER")
	artifact.SchemaVersion = 0
	path := writeTestIndex(t, dir, artifact)

	var loadErr *LoadError
	if _, err := LoadIndex(path); !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
	if loadErr.Stage != "corpus index" {
		t.Errorf("Stage = %q, want corpus index", loadErr.Stage)
	}
}

func TestIndex_StructuralValidation(t *testing.T) {
	dir := t.TempDir()

	broken := testIndexArtifact("LEVERING AF VARER")
	broken.IDF = broken.IDF[:len(broken.IDF)-1]
	path := writeTestIndex(t, dir, broken)
	if _, err := LoadIndex(path); err == nil {
		t.Error("expected an error for idf/vocabulary length mismatch")
	}

	broken = testIndexArtifact("LEVERING AF VARER")
	broken.Assignments = []int{0, 0}
	path = writeTestIndex(t, dir, broken)
	if _, err := LoadIndex(path); err == nil {
		t.Error("expected an error for assignments/rows length mismatch")
	}

	broken = testIndexArtifact("LEVERING AF VARER")
	broken.ModelVersion = ""
	path = writeTestIndex(t, dir, broken)
	if _, err := LoadIndex(path); err == nil {
		t.Error("expected an error for an empty model_version")
	}
}

func testPaths(t *testing.T, rows ...string) Paths {
	t.Helper()
	dir := t.TempDir()

	indexPath := writeTestIndex(t, dir, testIndexArtifact(rows...))

	dictPath := filepath.Join(dir, "dictionary.txt")
	counts := make(map[string]int)
	for _, row := range rows {
		for _, word := range strings.Fields(strings.ToLower(row)) {
			counts[word] += 2
		}
	}
	if err := WriteDictionary(dictPath, counts); err != nil {
		t.Fatalf("WriteDictionary: %v", err)
	}

	abbrevPath := filepath.Join(dir, "abbreviations.json")
	if err := WriteAbbreviations(abbrevPath, map[string]string{"udv.": "udvendig"}); err != nil {
		t.Fatalf("WriteAbbreviations: %v", err)
	}

	gazPath := filepath.Join(dir, "gazetteer.txt")
	if err := WriteGazetteer(gazPath, []string{"Aarhus", "Odense"}); err != nil {
		t.Fatalf("WriteGazetteer: %v", err)
	}

	return Paths{
		CorpusIndex:   indexPath,
		Dictionary:    dictPath,
		Abbreviations: abbrevPath,
		Gazetteer:     gazPath,
	}
}

func TestLoad_FullSnapshot(t *testing.T) {
	paths := testPaths(t, "LEVERING AF VARER", "MONTERING AF LAMPE")

	snapshot, err := Load(paths, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if snapshot.Rows() != 2 {
		t.Errorf("Rows = %d, want 2", snapshot.Rows())
	}
	if snapshot.SpellMode() != spell.ModePrimary {
		t.Errorf("SpellMode = %q, want primary", snapshot.SpellMode())
	}
	if snapshot.Scrubber == nil || snapshot.Checker == nil {
		t.Error("snapshot must carry ready-built scrubber and checker")
	}
	if snapshot.LoadedAt.IsZero() {
		t.Error("LoadedAt not set")
	}
}

func TestLoad_FallsBackWithoutDictionary(t *testing.T) {
	paths := testPaths(t, "LEVERING AF VARER")
	paths.Dictionary = ""

	snapshot, err := Load(paths, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snapshot.SpellMode() != spell.ModeFallback {
		t.Errorf("SpellMode = %q, want fallback", snapshot.SpellMode())
	}
	// The fallback corrects against the corpus row vocabulary.
	if got := snapshot.Checker.CorrectWord("leverng"); got != "levering" {
		t.Errorf("CorrectWord(leverng) = %q, want levering", got)
	}
}

func TestStore_ReloadFailureKeepsActiveSnapshot(t *testing.T) {
	store := NewStore(LoadOptions{})
	paths := testPaths(t, "LEVERING AF VARER")

	if err := store.Init(paths); err != nil {
		t.Fatalf("Init: %v", err)
	}
	active := store.Current()
	if active == nil {
		t.Fatal("Current is nil after Init")
	}

	// A corpus artifact with the wrong schema version must fail the
	// reload and leave the active snapshot serving.
	dir := t.TempDir()
	badArtifact := testIndexArtifact("NY TEKST")
	badArtifact.SchemaVersion = 99
	badPath := writeTestIndex(t, dir, badArtifact)

	_, err := store.Reload(Paths{CorpusIndex: badPath})
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Reload error = %v, want *LoadError", err)
	}
	if store.Current() != active {
		t.Error("failed reload must not replace the active snapshot")
	}
}

func TestStore_ReloadMergesPaths(t *testing.T) {
	store := NewStore(LoadOptions{})
	paths := testPaths(t, "LEVERING AF VARER")
	if err := store.Init(paths); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// Replace only the corpus index; the other artifacts keep their paths.
	dir := t.TempDir()
	newIndex := writeTestIndex(t, dir, testIndexArtifact("MONTERING AF LAMPE", "KONTROL AF PUMPE"))

	snapshot, err := store.Reload(Paths{CorpusIndex: newIndex})
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if snapshot.Rows() != 2 {
		t.Errorf("Rows = %d, want 2", snapshot.Rows())
	}
	if snapshot.Paths.Dictionary != paths.Dictionary {
		t.Errorf("Dictionary path changed: %q", snapshot.Paths.Dictionary)
	}
	if store.Current() != snapshot {
		t.Error("Current must return the reloaded snapshot")
	}
}
