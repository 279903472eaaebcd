// Package style matches draft invoice lines against the historical corpus
// inside a frozen TF-IDF vector space.
package style

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/janm-comcon/stdtext/normalization/algorithms"
)

// Row is one historical corpus line projected into the frozen space.
// Rows keep their corpus insertion order; that order breaks score ties.
type Row struct {
	Text   string
	Vector algorithms.SparseVector
}

// Index is the frozen snapshot of the similarity model: the projection,
// the cluster centroids and every corpus row assigned to its cluster.
// Immutable after construction and safe to share between requests.
type Index struct {
	vectorizer   *algorithms.FrozenVectorizer
	centroids    []algorithms.SparseVector
	assignments  []int
	rows         []Row
	clusters     [][]int
	modelVersion string
}

// NewIndex projects the corpus rows and wires them to their clusters.
// The centroid list may be empty, in which case every query scans the
// full corpus.
func NewIndex(
	vectorizer *algorithms.FrozenVectorizer,
	centroids []algorithms.SparseVector,
	assignments []int,
	rowTexts []string,
	modelVersion string,
) (*Index, error) {
	if vectorizer == nil {
		return nil, fmt.Errorf("index requires a vectorizer")
	}
	if len(assignments) != len(rowTexts) {
		return nil, fmt.Errorf("index has %d assignments for %d rows", len(assignments), len(rowTexts))
	}

	ix := &Index{
		vectorizer:   vectorizer,
		centroids:    centroids,
		assignments:  assignments,
		rows:         make([]Row, len(rowTexts)),
		clusters:     make([][]int, len(centroids)),
		modelVersion: modelVersion,
	}

	for i, text := range rowTexts {
		ix.rows[i] = Row{Text: text, Vector: vectorizer.Transform(text)}
		if len(centroids) > 0 {
			cluster := assignments[i]
			if cluster < 0 || cluster >= len(centroids) {
				return nil, fmt.Errorf("row %d assigned to cluster %d of %d", i, cluster, len(centroids))
			}
			ix.clusters[cluster] = append(ix.clusters[cluster], i)
		}
	}

	return ix, nil
}

// Size returns the number of corpus rows.
func (ix *Index) Size() int {
	return len(ix.rows)
}

// Clusters returns the number of centroids.
func (ix *Index) Clusters() int {
	return len(ix.centroids)
}

// VocabularySize returns the number of terms in the frozen space.
func (ix *Index) VocabularySize() int {
	return ix.vectorizer.VocabularySize()
}

// ModelVersion returns the version string of the offline model the index
// was built from.
func (ix *Index) ModelVersion() string {
	return ix.modelVersion
}

// WordFrequencies counts the word forms across all corpus rows. The
// fallback spell engine uses this as its vocabulary.
func (ix *Index) WordFrequencies() map[string]int {
	counts := make(map[string]int)
	for _, row := range ix.rows {
		for _, field := range strings.Fields(strings.ToLower(row.Text)) {
			word := strings.TrimFunc(field, func(r rune) bool {
				return !unicode.IsLetter(r)
			})
			if len([]rune(word)) < 2 {
				continue
			}
			counts[word]++
		}
	}
	return counts
}
