package errors

import (
	"math"
	"testing"
)

func TestValidateValues(t *testing.T) {
	tests := []struct {
		name    string
		input   []float64
		wantErr bool
	}{
		{"single", []float64{1}, false},
		{"several", []float64{1, 5, 2}, false},
		{"zeros with one positive", []float64{0, 0, 3}, false},
		{"sum overflows float64", []float64{1e308, 1e308}, false},

		{"nil", nil, true},
		{"empty", []float64{}, true},
		{"all zero", []float64{0, 0, 0}, true},
		{"negative", []float64{1, -1}, true},
		{"NaN", []float64{1, math.NaN()}, true},
		{"infinite", []float64{math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValues("values", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateValues(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateValues(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateValuesNamesArgument(t *testing.T) {
	err := ValidateValues("inner values", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := UserMessage(err), "inner values cannot be empty"; got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
}

func TestValidateRadiusRatio(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"one", 1, false},
		{"half", 0.5, false},
		{"tiny", 1e-9, false},

		{"zero", 0, true},
		{"negative", -0.5, true},
		{"above one", 1.01, true},
		{"NaN", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRadiusRatio(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRadiusRatio(%g) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"regular", 200, 100, false},
		{"zero", 0, 0, false},
		{"negative width", -1, 100, true},
		{"infinite height", 100, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%g, %g) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColorToken(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"hex", "#8dd3c7", false},
		{"named", "steelblue", false},
		{"rgb", "rgb(10, 20, 30)", false},

		{"empty", "", true},
		{"quote", `red"onload="x`, true},
		{"style break", "red;stroke:blue", true},
		{"tag", "<script>", true},
		{"control", "red\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColorToken(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColorToken(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
