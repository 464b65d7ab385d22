package churches

import "testing"

func TestGenerateCode(t *testing.T) {
	t.Run("generated codes are 6 uppercase alphanumeric characters", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			code := GenerateCode()
			if len(code) != CodeLength {
				t.Fatalf("expected length %d, got %q", CodeLength, code)
			}
			if !ValidCode(code) {
				t.Fatalf("generated code %q failed format validation", code)
			}
		}
	})

	t.Run("generated codes vary", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			seen[GenerateCode()] = true
		}
		if len(seen) < 2 {
			t.Fatal("expected multiple distinct codes")
		}
	})
}

func TestValidCode(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"GRACE1", true},
		{"ABC123", true},
		{"000000", true},
		{"grace1", false},
		{"GRACE", false},
		{"GRACE12", false},
		{"GRACE!", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidCode(tc.code); got != tc.want {
			t.Errorf("ValidCode(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
