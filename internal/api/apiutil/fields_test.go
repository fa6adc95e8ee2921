package apiutil

import "testing"

func TestFieldLabel(t *testing.T) {
	cases := map[string]string{
		"jersey_number":        "Jersey Number",
		"height":               "Height",
		"total_minutes_played": "Total Minutes Played",
		"final_score_home":     "Final Score Home",
	}
	for field, want := range cases {
		if got := FieldLabel(field); got != want {
			t.Errorf("FieldLabel(%q) = %q, want %q", field, got, want)
		}
	}
}

func TestOptionalNonNegativeIntEmpty(t *testing.T) {
	var errs []string
	value := OptionalNonNegativeInt("", "goals", &errs)
	if value.Valid {
		t.Fatalf("expected NULL for empty input, got %v", value)
	}
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestOptionalNonNegativeIntNegative(t *testing.T) {
	var errs []string
	value := OptionalNonNegativeInt("-3", "goals", &errs)
	if value.Valid {
		t.Fatalf("expected NULL for negative input, got %v", value)
	}
	if len(errs) != 1 || errs[0] != "Goals must be a non-negative number." {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestOptionalNonNegativeIntNotANumber(t *testing.T) {
	var errs []string
	value := OptionalNonNegativeInt("seven", "jersey_number", &errs)
	if value.Valid {
		t.Fatalf("expected NULL for bad input, got %v", value)
	}
	if len(errs) != 1 || errs[0] != "Jersey Number must be a valid number." {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestOptionalNonNegativeFloat(t *testing.T) {
	var errs []string

	value := OptionalNonNegativeFloat("182.5", "height", &errs)
	if !value.Valid || value.Float64 != 182.5 {
		t.Fatalf("expected 182.5, got %v", value)
	}

	value = OptionalNonNegativeFloat("-5", "height", &errs)
	if value.Valid {
		t.Fatalf("expected NULL for negative input, got %v", value)
	}
	if len(errs) != 1 || errs[0] != "Height must be a non-negative number." {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestRequireText(t *testing.T) {
	var errs []string

	if got := RequireText("  Alex Smith ", "player_name", &errs); got != "Alex Smith" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	RequireText("", "player_name", &errs)
	if len(errs) != 1 || errs[0] != "Player Name is required." {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestOptionalText(t *testing.T) {
	if value := OptionalText("   "); value.Valid {
		t.Fatalf("expected NULL for blank input, got %v", value)
	}
	value := OptionalText("4-3-3")
	if !value.Valid || value.String != "4-3-3" {
		t.Fatalf("unexpected value: %v", value)
	}
}
