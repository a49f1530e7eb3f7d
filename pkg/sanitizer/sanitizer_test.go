package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n  ", ""},
		{"leading and trailing", "  alice  ", "alice"},
		{"internal runs collapsed", "alice   smith", "alice smith"},
		{"tabs and newlines", "alice\t\nsmith", "alice smith"},
		{"already clean", "alice", "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeSlot(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "a1", "A1"},
		{"mixed case with padding", "  b12 ", "B12"},
		{"already normalized", "C3", "C3"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeSlot(tt.input); got != tt.want {
				t.Errorf("SanitizeSlot(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeUser(t *testing.T) {
	if got := SanitizeUser("  Alice   Smith "); got != "Alice Smith" {
		t.Errorf("SanitizeUser preserved case or spacing incorrectly: %q", got)
	}
}

func TestPipeline_AppliesInOrder(t *testing.T) {
	p := Pipeline{
		func(s string) string { return s + "a" },
		func(s string) string { return s + "b" },
	}
	if got := p.Apply("x"); got != "xab" {
		t.Errorf("expected strategies applied in order, got %q", got)
	}
}
