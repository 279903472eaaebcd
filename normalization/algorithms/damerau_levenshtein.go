package algorithms

// DamerauLevenshtein computes the Damerau-Levenshtein edit distance.
// Compared to plain Levenshtein it also counts the transposition of two
// adjacent characters as a single operation, which matches the dominant
// typo class in hand-keyed invoice lines.
type DamerauLevenshtein struct{}

// NewDamerauLevenshtein creates a new distance calculator.
func NewDamerauLevenshtein() *DamerauLevenshtein {
	return &DamerauLevenshtein{}
}

// Distance returns the minimal number of operations (insert, delete,
// substitute, transpose) needed to turn str1 into str2.
func (dl *DamerauLevenshtein) Distance(str1, str2 string) int {
	return dl.DistanceRunes([]rune(str1), []rune(str2))
}

// DistanceRunes computes the distance over rune slices, avoiding repeated
// UTF-8 decoding when the caller already works with runes.
func (dl *DamerauLevenshtein) DistanceRunes(r1, r2 []rune) int {
	len1 := len(r1)
	len2 := len(r2)

	if len1 == 0 {
		return len2
	}
	if len2 == 0 {
		return len1
	}

	// (len1+2) x (len2+2) matrix with a sentinel border row/column.
	matrix := make([][]int, len1+2)
	for i := range matrix {
		matrix[i] = make([]int, len2+2)
	}

	maxDist := len1 + len2
	matrix[0][0] = maxDist

	for i := 0; i <= len1; i++ {
		matrix[i+1][0] = maxDist
		matrix[i+1][1] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j+1] = maxDist
		matrix[1][j+1] = j
	}

	// Last row where each rune occurred in r1.
	da := make(map[rune]int)

	for i := 1; i <= len1; i++ {
		db := 0
		for j := 1; j <= len2; j++ {
			i1 := da[r2[j-1]]
			j1 := db
			cost := 1

			if r1[i-1] == r2[j-1] {
				cost = 0
				db = j
			}

			matrix[i+1][j+1] = min4(
				matrix[i+1][j]+1,  // insertion
				matrix[i][j+1]+1,  // deletion
				matrix[i][j]+cost, // substitution
				matrix[i1][j1]+(i-i1-1)+1+(j-j1-1), // transposition
			)
		}
		da[r1[i-1]] = i
	}

	return matrix[len1+1][len2+1]
}

// Similarity maps the distance into [0.0, 1.0], where 1.0 means identical.
func (dl *DamerauLevenshtein) Similarity(str1, str2 string) float64 {
	if str1 == "" && str2 == "" {
		return 1.0
	}

	distance := dl.Distance(str1, str2)
	maxLen := len([]rune(str1))
	if len([]rune(str2)) > maxLen {
		maxLen = len([]rune(str2))
	}

	if maxLen == 0 {
		return 1.0
	}

	similarity := 1.0 - float64(distance)/float64(maxLen)
	if similarity < 0.0 {
		similarity = 0.0
	}

	return similarity
}

// min4 returns the minimum of four ints.
func min4(a, b, c, d int) int {
	min := a
	if b < min {
		min = b
	}
	if c < min {
		min = c
	}
	if d < min {
		min = d
	}
	return min
}

// BoundedLevenshtein computes the plain Levenshtein distance between two
// rune slices but gives up as soon as the distance is guaranteed to exceed
// maxDist, returning maxDist+1. Used for linear vocabulary scans where most
// candidates are far away and the full matrix would be wasted work.
func BoundedLevenshtein(r1, r2 []rune, maxDist int) int {
	len1 := len(r1)
	len2 := len(r2)

	if len1-len2 > maxDist || len2-len1 > maxDist {
		return maxDist + 1
	}
	if len1 == 0 {
		return len2
	}
	if len2 == 0 {
		return len1
	}

	prev := make([]int, len2+1)
	curr := make([]int, len2+1)
	for j := 0; j <= len2; j++ {
		prev[j] = j
	}

	for i := 1; i <= len1; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len2; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			ins := curr[j-1] + 1
			del := prev[j] + 1
			sub := prev[j-1] + cost
			v := ins
			if del < v {
				v = del
			}
			if sub < v {
				v = sub
			}
			curr[j] = v
			if v < rowMin {
				rowMin = v
			}
		}
		if rowMin > maxDist {
			return maxDist + 1
		}
		prev, curr = curr, prev
	}

	if prev[len2] > maxDist {
		return maxDist + 1
	}
	return prev[len2]
}
