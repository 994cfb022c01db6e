package csvfile

import (
	"path/filepath"
	"regexp"
	"strings"
)

// TimestampLayout is the time layout appended to execution names.
const TimestampLayout = "20060102_150405"

// timestampSuffix matches a trailing "-YYYYMMDD_HHMMSS" with an optional
// "_<n>" collision counter.
var timestampSuffix = regexp.MustCompile(`-\d{8}_\d{6}(_\d+)?$`)

// BaseName returns the file name of path without directory or extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// StripTimestamp removes a trailing execution timestamp from name. Names
// without one are returned unchanged.
func StripTimestamp(name string) string {
	return timestampSuffix.ReplaceAllString(name, "")
}

// HasTimestamp reports whether name ends with an execution timestamp.
func HasTimestamp(name string) bool {
	return timestampSuffix.MatchString(name)
}

// ReportPath returns the Markdown path paired with a CSV path.
func ReportPath(csvPath string) string {
	return strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".md"
}
