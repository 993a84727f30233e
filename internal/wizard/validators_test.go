package wizard

import (
	"math/rand"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	valid := []string{"entry", "my-pkg", "my_module", "A1", "user/pkg", "0start"}
	for _, name := range valid {
		t.Run(name, func(t *testing.T) {
			got, err := ValidateName(name)
			if err != nil {
				t.Fatalf("ValidateName(%q) error: %v", name, err)
			}
			if got != name {
				t.Errorf("ValidateName(%q) = %q, want input returned unchanged", name, got)
			}
		})
	}

	invalid := []string{"", "-leading", "_leading", "has space", "a/b/c", "a//b", "emoji✨", "dot.name"}
	for _, name := range invalid {
		t.Run("reject_"+name, func(t *testing.T) {
			if _, err := ValidateName(name); err == nil {
				t.Errorf("ValidateName(%q) accepted, want rejection", name)
			}
		})
	}
}

func TestValidateVersion_RoundTrip(t *testing.T) {
	// Accepted versions must re-render identically through the semver
	// formatter.
	inputs := []string{"1.0.0", "0.1.0", "2.10.3", "1.0.0-alpha.1", "1.0.0-rc.2+build.5"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			v, err := ValidateVersion(in)
			if err != nil {
				t.Fatalf("ValidateVersion(%q) error: %v", in, err)
			}
			if v.String() != in {
				t.Errorf("round trip of %q = %q", in, v.String())
			}
		})
	}
}

func TestValidateVersion_Rejects(t *testing.T) {
	invalid := []string{"", "1", "1.0", "v1.0.0", "1.0.0.0", "not-a-version"}
	for _, in := range invalid {
		t.Run(in, func(t *testing.T) {
			if _, err := ValidateVersion(in); err == nil {
				t.Errorf("ValidateVersion(%q) accepted, want rejection", in)
			}
		})
	}
}

func TestValidateSource(t *testing.T) {
	accepted := []string{"none", "entry.wasm", "app.wasm", "build/out/app.wasm", "../up.wasm", "weird name.wasm"}
	for _, in := range accepted {
		t.Run(in, func(t *testing.T) {
			got, err := ValidateSource(in)
			if err != nil {
				t.Fatalf("ValidateSource(%q) error: %v", in, err)
			}
			if got != in {
				t.Errorf("ValidateSource(%q) = %q", in, got)
			}
		})
	}

	rejected := []string{"", "app", "app.wat", "app.wasm.bak", "wasm", "None", "none.txt", "nonefile"}
	for _, in := range rejected {
		t.Run("reject_"+in, func(t *testing.T) {
			_, err := ValidateSource(in)
			if err == nil {
				t.Fatalf("ValidateSource(%q) accepted, want rejection", in)
			}
			if !strings.Contains(err.Error(), SourceExtension) {
				t.Errorf("rejection message should name the %s extension, got %q", SourceExtension, err)
			}
		})
	}
}

func TestValidateSource_GeneratedStrings(t *testing.T) {
	// Property: exactly the sentinel and .wasm-suffixed strings are
	// accepted, regardless of what precedes the suffix.
	rng := rand.New(rand.NewSource(1))
	alphabet := "abz09._-/ wasmnoe"

	for i := 0; i < 500; i++ {
		n := rng.Intn(12)
		b := make([]byte, n)
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		s := string(b)
		if rng.Intn(3) == 0 {
			s += SourceExtension
		}

		_, err := ValidateSource(s)
		want := s == SourceNone || strings.HasSuffix(s, SourceExtension)
		if (err == nil) != want {
			t.Errorf("ValidateSource(%q): accepted=%v, want %v", s, err == nil, want)
		}
	}
}

func TestValidateCommandList(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"", true},
		{"app", true},
		{"app run-app", true}, // returned unsplit
		{"a b c", true},
		{"bad name!", false},
		{"-app", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ValidateCommandList(tt.in)
			if tt.valid {
				if err != nil {
					t.Fatalf("ValidateCommandList(%q) error: %v", tt.in, err)
				}
				if got != tt.in {
					t.Errorf("ValidateCommandList(%q) = %q, want raw string back", tt.in, got)
				}
			} else if err == nil {
				t.Errorf("ValidateCommandList(%q) accepted, want rejection", tt.in)
			}
		})
	}
}

func TestValidateLicense(t *testing.T) {
	for _, in := range []string{"ISC", "MIT", "Apache-2_0"} {
		if _, err := ValidateLicense(in); err != nil {
			t.Errorf("ValidateLicense(%q) error: %v", in, err)
		}
	}
	if _, err := ValidateLicense(""); err == nil {
		t.Error("ValidateLicense(\"\") accepted, want rejection")
	}
}
