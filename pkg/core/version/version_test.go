package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	if !semverRegex.MatchString(Chronos) {
		t.Errorf("Chronos version %q is not semver", Chronos)
	}
	if API == "" {
		t.Error("API version is empty")
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	for _, want := range []string{Chronos, API, GitCommit} {
		if !strings.Contains(info, want) {
			t.Errorf("Info() = %q, missing %q", info, want)
		}
	}
}
