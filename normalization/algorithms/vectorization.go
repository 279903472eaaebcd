package algorithms

import (
	"math"
	"sort"
	"strings"
)

// SparseEntry is one (term id, weight) component of a sparse vector.
type SparseEntry struct {
	Term   int
	Weight float64
}

// SparseVector is a sparse TF-IDF vector ordered by ascending term id.
// The fixed ordering makes dot products sum in a fixed order, so equal
// inputs always produce bit-identical scores across processes.
type SparseVector []SparseEntry

// Dot returns the dot product of two ordered sparse vectors.
func (v SparseVector) Dot(other SparseVector) float64 {
	dot := 0.0
	i, j := 0, 0
	for i < len(v) && j < len(other) {
		switch {
		case v[i].Term == other[j].Term:
			dot += v[i].Weight * other[j].Weight
			i++
			j++
		case v[i].Term < other[j].Term:
			i++
		default:
			j++
		}
	}
	return dot
}

// Norm returns the Euclidean (L2) norm.
func (v SparseVector) Norm() float64 {
	sum := 0.0
	for _, e := range v {
		sum += e.Weight * e.Weight
	}
	return math.Sqrt(sum)
}

// Normalized returns a copy scaled to unit L2 norm. A zero vector is
// returned unchanged.
func (v SparseVector) Normalized() SparseVector {
	norm := v.Norm()
	if norm == 0 {
		return v
	}
	out := make(SparseVector, len(v))
	for i, e := range v {
		out[i] = SparseEntry{Term: e.Term, Weight: e.Weight / norm}
	}
	return out
}

// CosineSimilaritySparse computes the cosine similarity of two sparse
// vectors. Empty or zero vectors score 0.0.
func CosineSimilaritySparse(a, b SparseVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	na := a.Norm()
	nb := b.Norm()
	if na == 0 || nb == 0 {
		return 0.0
	}
	return a.Dot(b) / (na * nb)
}

// WordNGrams generates character n-grams per whitespace-delimited word,
// each word padded with a single leading and trailing space so that grams
// never cross word boundaries. Words shorter than n contribute the padded
// word itself once. Output order is deterministic: word by word, gram size
// ascending, offset ascending.
func WordNGrams(text string, nMin, nMax int) []string {
	if nMin < 1 {
		nMin = 1
	}
	if nMax < nMin {
		nMax = nMin
	}

	var ngrams []string
	for _, word := range strings.Fields(text) {
		padded := []rune(" " + word + " ")
		wLen := len(padded)
		for n := nMin; n <= nMax; n++ {
			offset := 0
			end := offset + n
			if end > wLen {
				end = wLen
			}
			ngrams = append(ngrams, string(padded[offset:end]))
			for offset+n < wLen {
				offset++
				ngrams = append(ngrams, string(padded[offset:offset+n]))
			}
			if offset == 0 {
				// The whole padded word fits in one gram; larger
				// sizes would repeat it.
				break
			}
		}
	}
	return ngrams
}

// FrozenVectorizer projects text into a fixed TF-IDF space. Vocabulary and
// idf weights come from a previously fitted model artifact; this type never
// fits anything itself.
type FrozenVectorizer struct {
	vocabulary map[string]int
	idf        []float64
	ngramMin   int
	ngramMax   int
}

// NewFrozenVectorizer builds a projector over the given vocabulary. terms
// maps each n-gram to its id; idf must hold one weight per id.
func NewFrozenVectorizer(terms map[string]int, idf []float64, ngramMin, ngramMax int) *FrozenVectorizer {
	return &FrozenVectorizer{
		vocabulary: terms,
		idf:        idf,
		ngramMin:   ngramMin,
		ngramMax:   ngramMax,
	}
}

// VocabularySize returns the number of terms in the frozen space.
func (fv *FrozenVectorizer) VocabularySize() int {
	return len(fv.vocabulary)
}

// Transform projects a document into the frozen space: term frequencies of
// known n-grams, scaled by the stored idf weights, L2-normalized, emitted
// as an ordered sparse vector. Out-of-vocabulary grams are dropped.
func (fv *FrozenVectorizer) Transform(doc string) SparseVector {
	grams := WordNGrams(strings.ToLower(strings.TrimSpace(doc)), fv.ngramMin, fv.ngramMax)
	if len(grams) == 0 {
		return nil
	}

	counts := make(map[int]int)
	for _, gram := range grams {
		if id, ok := fv.vocabulary[gram]; ok {
			counts[id]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	total := float64(len(grams))
	vector := make(SparseVector, 0, len(ids))
	for _, id := range ids {
		tf := float64(counts[id]) / total
		vector = append(vector, SparseEntry{Term: id, Weight: tf * fv.idf[id]})
	}

	return vector.Normalized()
}
