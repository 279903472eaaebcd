package style

import (
	"errors"
	"testing"

	"github.com/janm-comcon/stdtext/normalization/algorithms"
)

func buildFlatIndex(t *testing.T, rows ...string) *Index {
	t.Helper()
	vec := testVectorizer(rows...)
	assignments := make([]int, len(rows))
	ix, err := NewIndex(vec, nil, assignments, rows, "v1")
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	return ix
}

func TestIndex_MatchRanksExactRowFirst(t *testing.T) {
	ix := buildFlatIndex(t,
		"levering af varer",
		"montering af lampe",
		"kontrol af pumpe",
	)

	matches, err := ix.Match("levering af varer", 2)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Text != "levering af varer" {
		t.Errorf("best match = %q", matches[0].Text)
	}
	if matches[0].Score < 0.99 {
		t.Errorf("best score = %f, want ~1.0", matches[0].Score)
	}
	if matches[0].Score < matches[1].Score {
		t.Error("scores must be non-increasing")
	}
}

func TestIndex_MatchInvalidTopK(t *testing.T) {
	ix := buildFlatIndex(t, "levering af varer")

	for _, k := range []int{0, -1} {
		if _, err := ix.Match("levering", k); !errors.Is(err, ErrInvalidTopK) {
			t.Errorf("Match with top_k=%d: expected ErrInvalidTopK, got %v", k, err)
		}
	}
}

func TestIndex_MatchEmptyCorpus(t *testing.T) {
	vec := testVectorizer("levering")
	ix, err := NewIndex(vec, nil, nil, nil, "v1")
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	matches, err := ix.Match("levering", 5)
	if err != nil {
		t.Errorf("empty corpus must not error, got %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("empty corpus must yield no matches, got %v", matches)
	}
}

func TestIndex_MatchTopKBeyondCorpus(t *testing.T) {
	ix := buildFlatIndex(t, "levering af varer", "kontrol af pumpe")

	matches, err := ix.Match("levering", 10)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("got %d matches, want the whole corpus (2)", len(matches))
	}
}

func TestIndex_MatchTiesKeepInsertionOrder(t *testing.T) {
	ix := buildFlatIndex(t, "levering af varer", "levering af varer", "levering af varer")

	matches, err := ix.Match("levering af varer", 3)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score != matches[0].Score {
			t.Fatalf("identical rows must score identically: %v", matches)
		}
	}
}

func clusteredIndex(t *testing.T) *Index {
	t.Helper()
	rows := []string{
		"levering af varer",
		"levering af materialer",
		"kontrol af pumpe",
		"kontrol af ventil",
	}
	vec := testVectorizer(rows...)
	centroids := []algorithms.SparseVector{
		vec.Transform("levering af varer"),
		vec.Transform("kontrol af pumpe"),
	}
	ix, err := NewIndex(vec, centroids, []int{0, 0, 1, 1}, rows, "v1")
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	return ix
}

func TestIndex_MatchNarrowsToNearestCluster(t *testing.T) {
	ix := clusteredIndex(t)

	matches, err := ix.Match("levering af varer", 2)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	for _, m := range matches {
		if m.Text != "levering af varer" && m.Text != "levering af materialer" {
			t.Errorf("match %q escaped the nearest cluster", m.Text)
		}
	}
}

func TestIndex_MatchWidensWhenClusterTooSmall(t *testing.T) {
	ix := clusteredIndex(t)

	// Each cluster holds two rows; asking for three must widen the
	// search to the full corpus.
	matches, err := ix.Match("levering af varer", 3)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
}

func TestIndex_MatchDeterministic(t *testing.T) {
	ix := clusteredIndex(t)

	first, err := ix.Match("levering af pumpe", 4)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	for i := 0; i < 25; i++ {
		again, err := ix.Match("levering af pumpe", 4)
		if err != nil {
			t.Fatalf("Match: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("result length changed: %d vs %d", len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: match %d differs: %+v vs %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestIndex_MatchOutOfVocabularyQuery(t *testing.T) {
	ix := buildFlatIndex(t, "levering af varer", "kontrol af pumpe")

	// A query with no known grams scores zero everywhere; ordering falls
	// back to corpus insertion order.
	matches, err := ix.Match("zzzzzz", 2)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Text != "levering af varer" || matches[1].Text != "kontrol af pumpe" {
		t.Errorf("zero-score ordering must follow insertion order: %v", matches)
	}
	if matches[0].Score != 0 || matches[1].Score != 0 {
		t.Errorf("out-of-vocabulary query must score zero: %v", matches)
	}
}
