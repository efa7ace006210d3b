package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local format", "08012345678", "+2348012345678"},
		{"already e164", "+2348012345678", "+2348012345678"},
		{"with spaces", " 0801 234 5678 ", "+2348012345678"},
		{"invalid kept as typed", "12345", "12345"},
		{"empty", "", ""},
		{"foreign number", "+14155552671", "+14155552671"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeE164(tt.input); got != tt.want {
				t.Fatalf("NormalizeE164(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
