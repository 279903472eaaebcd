package normalization

import "testing"

func TestTextNormalizer(t *testing.T) {
	n := NewTextNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		{"Levering   af  Vindue", "levering af vindue"},
		{"MONTERING, kontrol:", "montering kontrol"},
		{"  (afprøvet)  ok!  ", "afprøvet ok"},
		{"2,5 m kabel", "2,5 m kabel"},
		{"udskiftning a/s stk.", "udskiftning a/s stk."},
		{"?!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := n.Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
