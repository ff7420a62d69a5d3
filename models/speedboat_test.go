package models

import (
	"strings"
	"testing"
)

func TestSpeedboatParamsValidate(t *testing.T) {
	cases := []struct {
		name        string
		modelNumber string
		wantErr     bool
	}{
		{"valid", "S100", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := SpeedboatParams{Brand: "yamaha", ModelNumber: tc.modelNumber}.Validate()
			if tc.wantErr {
				if len(errs["model_number"]) == 0 || errs["model_number"][0] != "can't be blank" {
					t.Fatalf("expected model_number blank error, got %v", errs)
				}
			} else if errs != nil {
				t.Fatalf("expected no errors, got %v", errs)
			}
		})
	}
}

func TestValidateSpeedboatFields(t *testing.T) {
	if errs := ValidateSpeedboatFields(map[string]interface{}{"brand": "honda"}); errs != nil {
		t.Fatalf("omitted model_number is valid for a partial update, got %v", errs)
	}
	if errs := ValidateSpeedboatFields(map[string]interface{}{"model_number": "S200"}); errs != nil {
		t.Fatalf("non-blank model_number is valid, got %v", errs)
	}
	if errs := ValidateSpeedboatFields(map[string]interface{}{"model_number": nil}); errs == nil {
		t.Fatal("null model_number must fail validation")
	}
	if errs := ValidateSpeedboatFields(map[string]interface{}{"model_number": ""}); errs == nil {
		t.Fatal("blank model_number must fail validation")
	}
}

func TestFilterSpeedboatFields(t *testing.T) {
	fields := FilterSpeedboatFields(map[string]interface{}{
		"brand":        "honda",
		"model_number": "S200",
		"id":           42,
		"created_at":   "2020-01-01",
		"hull_color":   "red",
	})

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields to survive filtering, got %v", fields)
	}
	if fields["brand"] != "honda" || fields["model_number"] != "S200" {
		t.Fatalf("allowed fields missing: %v", fields)
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{}
	errs.Add("model_number", "can't be blank")

	if msg := errs.Error(); !strings.Contains(msg, "model_number can't be blank") {
		t.Fatalf("unexpected error string: %q", msg)
	}
}
