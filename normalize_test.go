package pagetext

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "combining acute composes",
			input: "café",
			want:  "café",
		},
		{
			name:  "precomposed passes through",
			input: "café",
			want:  "café",
		},
		{
			name:  "combining dakuten composes",
			input: "が", // か + combining dakuten
			want:  "が",       // が
		},
		{
			name:  "ascii unchanged",
			input: "plain ascii text",
			want:  "plain ascii text",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"café au lait",
		"がぎ", // multiple combining marks
		"already normalized",
		"",
	}

	for _, input := range inputs {
		once := NormalizeText(input)
		twice := NormalizeText(once)
		if once != twice {
			t.Errorf("NormalizeText not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
