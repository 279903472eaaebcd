package style

import (
	"errors"
	"sort"

	"github.com/janm-comcon/stdtext/normalization/algorithms"
)

// ErrInvalidTopK rejects non-positive neighbor counts before any work is
// done.
var ErrInvalidTopK = errors.New("top_k must be at least 1")

// Match is one corpus neighbor of a query, scored by cosine similarity.
type Match struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Match returns the topK corpus rows most similar to the text. The
// nearest cluster narrows the candidate set first; a cluster smaller than
// topK widens the search to the full corpus. Scores are non-increasing
// and ties keep corpus insertion order. An empty corpus yields an empty
// result without error; topK beyond the corpus size returns every row.
func (ix *Index) Match(text string, topK int) ([]Match, error) {
	if topK < 1 {
		return nil, ErrInvalidTopK
	}
	if len(ix.rows) == 0 {
		return nil, nil
	}

	query := ix.vectorizer.Transform(text)

	candidates := ix.candidateRows(query, topK)

	type scored struct {
		row   int
		score float64
	}
	ranked := make([]scored, len(candidates))
	for i, row := range candidates {
		ranked[i] = scored{row: row, score: algorithms.CosineSimilaritySparse(query, ix.rows[row].Vector)}
	}

	// Stable sort: candidates are in insertion order, which equal scores
	// must preserve.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if topK > len(ranked) {
		topK = len(ranked)
	}

	matches := make([]Match, topK)
	for i := 0; i < topK; i++ {
		matches[i] = Match{Text: ix.rows[ranked[i].row].Text, Score: ranked[i].score}
	}
	return matches, nil
}

// candidateRows picks the rows of the nearest cluster, or every row when
// there are no centroids or the cluster cannot satisfy topK.
func (ix *Index) candidateRows(query algorithms.SparseVector, topK int) []int {
	if len(ix.centroids) > 0 {
		best := ix.nearestCentroid(query)
		if members := ix.clusters[best]; len(members) >= topK {
			return members
		}
	}

	all := make([]int, len(ix.rows))
	for i := range all {
		all[i] = i
	}
	return all
}

// nearestCentroid returns the centroid with the highest cosine
// similarity; ties resolve to the lowest cluster id.
func (ix *Index) nearestCentroid(query algorithms.SparseVector) int {
	best := 0
	bestScore := algorithms.CosineSimilaritySparse(query, ix.centroids[0])
	for i := 1; i < len(ix.centroids); i++ {
		if score := algorithms.CosineSimilaritySparse(query, ix.centroids[i]); score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}
