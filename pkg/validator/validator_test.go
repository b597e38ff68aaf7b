package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseCount(t *testing.T) {
	cases := map[string]int64{
		"5":    5,
		" 12 ": 12,
		"-3":   0,
		"abc":  0,
		"":     0,
		"2.5":  0,
	}
	for raw, want := range cases {
		if got := ParseCount(raw); got != want {
			t.Errorf("ParseCount(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"2.00":   "2",
		"0.1":    "0.1",
		"-1.5":   "0",
		"x":      "0",
		" 19.99": "19.99",
	}
	for raw, want := range cases {
		if got := ParseAmount(raw); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestValidateStruct_NotBlank(t *testing.T) {
	type input struct {
		Code string `validate:"notblank"`
		Name string `validate:"notblank"`
	}

	errs := ValidateStruct(&input{Code: "A1", Name: "   "})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].FailedField != "input.Name" || errs[0].Tag != "notblank" {
		t.Errorf("unexpected error: %+v", errs[0])
	}

	if errs := ValidateStruct(&input{Code: "A1", Name: "Widget"}); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}
