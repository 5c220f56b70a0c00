package textengine

import "testing"

func TestVersion_EmbeddedIsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
	if Major() < 0 {
		t.Fatalf("major: got %d for %q", Major(), Version())
	}
}

func TestVersionTag(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := map[string]bool{
		"0.3.0":         true,
		"1.2.3-rc.1":    true,
		"2.0.0+build.7": true,
		"v1.2.3":        false,
		"1.2":           false,
		"01.2.3":        false,
		" 1.0.0 ":       true,
	}
	for v, want := range cases {
		if got := IsSemver(v); got != want {
			t.Fatalf("IsSemver(%q): got %v, want %v", v, got, want)
		}
	}
}
