package normalization

import "testing"

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"2", "2", true},
		{"02", "2", true},
		{"007", "7", true},
		{"2,5", "2.5", true},
		{"0,5", "0.5", true},
		{"2.50", "2.50", true},
		{"000", "0", true},
		{"abc", "", false},
		{"2,5,3", "", false},
		{"2x", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		result, ok := NormalizeQuantity(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("NormalizeQuantity(%q) = (%q, %v), want (%q, %v)",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestCountExtractor_Extract(t *testing.T) {
	e := NewCountExtractor(nil)

	tokens, placeholders := e.Extract(Tokenize("levering 2 stk"))

	if len(placeholders) != 1 {
		t.Fatalf("expected 1 placeholder, got %v", placeholders)
	}
	p := placeholders[0]
	if p.Key != "COUNT_0001" || p.Kind != KindCount || p.Original != "2 stk" {
		t.Errorf("placeholder = %+v, want COUNT_0001/count/\"2 stk\"", p)
	}
	if Join(tokens) != "levering <COUNT_0001>" {
		t.Errorf("extracted text = %q", Join(tokens))
	}
}

func TestCountExtractor_NormalizesUnitAndQuantity(t *testing.T) {
	e := NewCountExtractor(nil)

	tests := []struct {
		input    string
		expected string
	}{
		{"2 stk.", "2 stk"},
		{"02,5 kg", "2.5 kg"},
		{"3 Meter", "3 meter"},
	}

	for _, tt := range tests {
		_, placeholders := e.Extract(Tokenize(NewTextNormalizer().Normalize(tt.input)))
		if len(placeholders) != 1 {
			t.Errorf("input %q: expected 1 placeholder, got %v", tt.input, placeholders)
			continue
		}
		if placeholders[0].Original != tt.expected {
			t.Errorf("input %q: normalized = %q, want %q", tt.input, placeholders[0].Original, tt.expected)
		}
	}
}

func TestCountExtractor_LeavesAmbiguousFragmentsAlone(t *testing.T) {
	e := NewCountExtractor(nil)

	inputs := []string{
		"2 ting",   // unknown unit
		"stk 2",    // reversed order
		"levering", // no quantity at all
		"2",        // bare number
	}

	for _, input := range inputs {
		tokens, placeholders := e.Extract(Tokenize(input))
		if len(placeholders) != 0 {
			t.Errorf("input %q: expected no placeholders, got %v", input, placeholders)
		}
		if Join(tokens) != input {
			t.Errorf("input %q: tokens changed to %q", input, Join(tokens))
		}
	}
}

func TestCountExtractor_MultipleCountsNumberedLeftToRight(t *testing.T) {
	e := NewCountExtractor(nil)

	tokens, placeholders := e.Extract(Tokenize("2 stk og 5 m kabel"))

	if len(placeholders) != 2 {
		t.Fatalf("expected 2 placeholders, got %v", placeholders)
	}
	if placeholders[0].Key != "COUNT_0001" || placeholders[0].Original != "2 stk" {
		t.Errorf("first = %+v", placeholders[0])
	}
	if placeholders[1].Key != "COUNT_0002" || placeholders[1].Original != "5 m" {
		t.Errorf("second = %+v", placeholders[1])
	}
	if Join(tokens) != "<COUNT_0001> og <COUNT_0002> kabel" {
		t.Errorf("extracted text = %q", Join(tokens))
	}
}

func TestCountExtractor_CustomUnits(t *testing.T) {
	e := NewCountExtractor([]string{"paller"})

	_, placeholders := e.Extract(Tokenize("3 paller"))
	if len(placeholders) != 1 || placeholders[0].Original != "3 paller" {
		t.Errorf("custom unit not recognized: %v", placeholders)
	}

	_, placeholders = e.Extract(Tokenize("3 stk"))
	if len(placeholders) != 0 {
		t.Errorf("default units must not apply with a custom vocabulary: %v", placeholders)
	}
}
