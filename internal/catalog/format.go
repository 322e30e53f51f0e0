package catalog

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// FormatVersion is the newest content format this build understands.
// Files must share its major version and may not be newer.
const FormatVersion = "v1.1.0"

// checkFormat reports whether a file's declared format can be read.
func checkFormat(v string) error {
	if v == "" {
		return fmt.Errorf("missing format version (want %s)", semver.Major(FormatVersion)+".x")
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("format %q is not a semantic version", v)
	}
	if semver.Major(v) != semver.Major(FormatVersion) {
		return fmt.Errorf("format %s is incompatible with %s", v, FormatVersion)
	}
	if semver.Compare(v, FormatVersion) > 0 {
		return fmt.Errorf("format %s is newer than supported %s", v, FormatVersion)
	}
	return nil
}
