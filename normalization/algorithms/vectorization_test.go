package algorithms

import (
	"math"
	"testing"
)

func TestWordNGrams(t *testing.T) {
	// "ab" padded becomes " ab " (4 runes): grams of size 3 are " ab" and "ab ".
	ngrams := WordNGrams("ab", 3, 3)
	if len(ngrams) != 2 {
		t.Fatalf("WordNGrams(\"ab\", 3, 3) returned %d grams, want 2: %v", len(ngrams), ngrams)
	}
	if ngrams[0] != " ab" || ngrams[1] != "ab " {
		t.Errorf("WordNGrams(\"ab\", 3, 3) = %v, want [\" ab\" \"ab \"]", ngrams)
	}
}

func TestWordNGrams_ShortWordEmittedOnce(t *testing.T) {
	// "x" padded is " x " (3 runes), shorter than every gram size in 4..5:
	// the padded word itself is emitted exactly once.
	ngrams := WordNGrams("x", 4, 5)
	if len(ngrams) != 1 || ngrams[0] != " x " {
		t.Errorf("WordNGrams(\"x\", 4, 5) = %v, want [\" x \"]", ngrams)
	}
}

func TestWordNGrams_NoCrossWordGrams(t *testing.T) {
	ngrams := WordNGrams("ab cd", 3, 3)
	for _, g := range ngrams {
		if g == "b c" {
			t.Errorf("found cross-word gram %q, word padding must prevent it", g)
		}
	}
}

func TestSparseVector_Dot(t *testing.T) {
	a := SparseVector{{Term: 0, Weight: 1.0}, {Term: 2, Weight: 2.0}, {Term: 5, Weight: 3.0}}
	b := SparseVector{{Term: 2, Weight: 4.0}, {Term: 3, Weight: 9.0}, {Term: 5, Weight: 1.0}}

	dot := a.Dot(b)
	if dot != 11.0 {
		t.Errorf("Dot = %f, want 11.0", dot)
	}

	if d := a.Dot(SparseVector{}); d != 0.0 {
		t.Errorf("Dot with empty vector = %f, want 0.0", d)
	}
}

func TestSparseVector_Normalized(t *testing.T) {
	v := SparseVector{{Term: 1, Weight: 3.0}, {Term: 4, Weight: 4.0}}
	n := v.Normalized()

	if norm := n.Norm(); math.Abs(norm-1.0) > 1e-12 {
		t.Errorf("Normalized().Norm() = %f, want 1.0", norm)
	}

	// the original must stay untouched
	if v[0].Weight != 3.0 || v[1].Weight != 4.0 {
		t.Error("Normalized must not mutate the receiver")
	}
}

func TestCosineSimilaritySparse(t *testing.T) {
	a := SparseVector{{Term: 0, Weight: 1.0}, {Term: 1, Weight: 0.0}}
	if sim := CosineSimilaritySparse(a, a); math.Abs(sim-1.0) > 1e-12 {
		t.Errorf("cosine of vector with itself = %f, want 1.0", sim)
	}

	b := SparseVector{{Term: 2, Weight: 1.0}}
	if sim := CosineSimilaritySparse(a, b); sim != 0.0 {
		t.Errorf("cosine of disjoint vectors = %f, want 0.0", sim)
	}

	if sim := CosineSimilaritySparse(nil, a); sim != 0.0 {
		t.Errorf("cosine with nil vector = %f, want 0.0", sim)
	}
}

func TestFrozenVectorizer_Transform(t *testing.T) {
	// Frozen two-term space over 3-grams of "stk" and "kg".
	terms := map[string]int{" st": 0, "stk": 1, "tk ": 2, " kg": 3, "kg ": 4}
	idf := []float64{1.0, 2.0, 1.0, 1.5, 1.5}
	fv := NewFrozenVectorizer(terms, idf, 3, 3)

	vec := fv.Transform("stk")
	if len(vec) != 3 {
		t.Fatalf("Transform(\"stk\") has %d entries, want 3: %v", len(vec), vec)
	}

	// ordered by term id
	for i := 1; i < len(vec); i++ {
		if vec[i].Term <= vec[i-1].Term {
			t.Fatalf("Transform output not ordered by term id: %v", vec)
		}
	}

	if norm := vec.Norm(); math.Abs(norm-1.0) > 1e-12 {
		t.Errorf("Transform output norm = %f, want 1.0", norm)
	}
}

func TestFrozenVectorizer_TransformUnknownTerms(t *testing.T) {
	fv := NewFrozenVectorizer(map[string]int{" ab": 0}, []float64{1.0}, 3, 3)

	if vec := fv.Transform("zzzz"); vec != nil {
		t.Errorf("Transform of fully out-of-vocabulary text = %v, want nil", vec)
	}
	if vec := fv.Transform("   "); vec != nil {
		t.Errorf("Transform of blank text = %v, want nil", vec)
	}
}

func TestFrozenVectorizer_TransformDeterministic(t *testing.T) {
	terms := map[string]int{}
	idf := make([]float64, 0, 64)
	for i, g := range WordNGrams("levering montering udskiftning kontrol", 3, 5) {
		if _, ok := terms[g]; !ok {
			terms[g] = len(terms)
			idf = append(idf, 1.0+float64(i%7)/10.0)
		}
	}
	fv := NewFrozenVectorizer(terms, idf, 3, 5)

	first := fv.Transform("levering af kontrol")
	for i := 0; i < 50; i++ {
		again := fv.Transform("levering af kontrol")
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d != %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: entry %d differs: %+v vs %+v", i, j, again[j], first[j])
			}
		}
	}
}
