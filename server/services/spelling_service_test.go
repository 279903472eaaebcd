package services

import (
	"context"
	"testing"
)

func TestCorrectSpelling_FixesTyposKeepsProtectedSpans(t *testing.T) {
	service := NewSpellingService(newTestStore(t))

	result, err := service.CorrectSpelling(context.Background(), "leverng Aarhus 2 stk")
	if err != nil {
		t.Fatalf("CorrectSpelling: %v", err)
	}

	if result.Corrected != "levering aarhus 2 stk" {
		t.Errorf("Corrected = %q", result.Corrected)
	}
	if result.Mode != "primary" {
		t.Errorf("Mode = %q, want primary", result.Mode)
	}

	if len(result.Corrections) != 1 {
		t.Fatalf("Corrections = %v, want exactly one", result.Corrections)
	}
	correction := result.Corrections[0]
	if correction.Original != "leverng" || correction.Corrected != "levering" {
		t.Errorf("correction = %+v", correction)
	}
	if len(correction.Suggestions) == 0 {
		t.Error("correction should carry suggestions")
	}
	if len(correction.Suggestions) > maxSuggestions {
		t.Errorf("suggestions = %d, cap is %d", len(correction.Suggestions), maxSuggestions)
	}
	if correction.Suggestions[0] != "levering" {
		t.Errorf("top suggestion = %q, want levering", correction.Suggestions[0])
	}
}

func TestCorrectSpelling_CleanTextHasNoCorrections(t *testing.T) {
	service := NewSpellingService(newTestStore(t))

	result, err := service.CorrectSpelling(context.Background(), "levering og montering")
	if err != nil {
		t.Fatalf("CorrectSpelling: %v", err)
	}

	if result.Corrected != "levering og montering" {
		t.Errorf("Corrected = %q", result.Corrected)
	}
	if len(result.Corrections) != 0 {
		t.Errorf("Corrections = %v, want none", result.Corrections)
	}
}

func TestCorrectSpelling_AbbreviationIsImmune(t *testing.T) {
	service := NewSpellingService(newTestStore(t))

	// "lev." is a registered abbreviation: it must survive verbatim, not
	// be expanded or corrected.
	result, err := service.CorrectSpelling(context.Background(), "lev. til kunde")
	if err != nil {
		t.Fatalf("CorrectSpelling: %v", err)
	}

	if got := result.Corrected; got[:4] != "lev." {
		t.Errorf("Corrected = %q, abbreviation should be preserved", got)
	}
}

func TestCorrectSpelling_EmptyTextRejected(t *testing.T) {
	service := NewSpellingService(newTestStore(t))

	_, err := service.CorrectSpelling(context.Background(), "")
	assertAppErrorCode(t, err, 400)
}
