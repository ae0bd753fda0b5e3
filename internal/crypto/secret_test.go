package crypto

import (
	"strings"
	"testing"
)

func TestGenerateAPISecret(t *testing.T) {
	secret, err := GenerateAPISecret()
	if err != nil {
		t.Fatalf("GenerateAPISecret() unexpected error: %v", err)
	}

	if !strings.HasPrefix(secret, APITokenPrefix) {
		t.Errorf("GenerateAPISecret() = %q, want prefix %q", secret, APITokenPrefix)
	}
	if len(secret) != len(APITokenPrefix)+64 {
		t.Errorf("GenerateAPISecret() length = %d, want %d", len(secret), len(APITokenPrefix)+64)
	}
	if !LooksLikeAPISecret(secret) {
		t.Errorf("LooksLikeAPISecret(%q) = false", secret)
	}
}

func TestGenerateAPISecretProducesUniqueValues(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		secret, err := GenerateAPISecret()
		if err != nil {
			t.Fatalf("GenerateAPISecret() unexpected error: %v", err)
		}
		if seen[secret] {
			t.Errorf("duplicate secret generated: %q", secret)
		}
		seen[secret] = true
	}
}

func TestHashAPISecret(t *testing.T) {
	a := HashAPISecret("bmt_abc")
	b := HashAPISecret("bmt_abc")
	c := HashAPISecret("bmt_abd")

	if a != b {
		t.Error("HashAPISecret() is not deterministic")
	}
	if a == c {
		t.Error("HashAPISecret() collided for different inputs")
	}
	if len(a) != 64 {
		t.Errorf("HashAPISecret() length = %d, want 64", len(a))
	}
	if strings.Contains(a, "abc") {
		t.Error("HashAPISecret() leaks the input")
	}
}

func TestDisplayPrefix(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{name: "full secret", secret: "bmt_0123456789abcdef", want: "bmt_01234567"},
		{name: "short input", secret: "bmt_01", want: "bmt_01"},
		{name: "empty", secret: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayPrefix(tt.secret); got != tt.want {
				t.Errorf("DisplayPrefix(%q) = %q, want %q", tt.secret, got, tt.want)
			}
		})
	}
}

func TestLooksLikeAPISecret(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "wrong prefix", in: "xyz_" + strings.Repeat("a", 64), want: false},
		{name: "too short", in: APITokenPrefix + "abcd", want: false},
		{name: "not hex", in: APITokenPrefix + strings.Repeat("z", 64), want: false},
		{name: "valid", in: APITokenPrefix + strings.Repeat("0f", 32), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeAPISecret(tt.in); got != tt.want {
				t.Errorf("LooksLikeAPISecret(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
