// Package version reports the build version of the service.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is set at build time with
// -ldflags "-X github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/version.Current=v1.2.3".
var Current = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether version is a tagged semver release rather than
// a development build.
func IsRelease(version string) bool {
	v := Normalize(version)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}

// Info describes the running build.
type Info struct {
	Version string `json:"version"`
	Release bool   `json:"release"`
}

func Get() Info {
	return Info{
		Version: Current,
		Release: IsRelease(Current),
	}
}
