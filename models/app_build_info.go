package models

import "strings"

// notAvailable is printed for build metadata that was not set at link time.
const notAvailable = "N/A"

// AppBuildInfo is the version metadata of a stoa binary. The values come from
// -ldflags in release builds and are empty in `go run` builds.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// BuildField is one labelled line of build metadata.
type BuildField struct {
	Label string
	Value string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Surrounding whitespace is
// trimmed from every value.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.commit) }

// Fields returns the metadata in display order, with unset values replaced
// by "N/A".
func (a AppBuildInfo) Fields() []BuildField {
	return []BuildField{
		{Label: "version", Value: a.BuildVersion()},
		{Label: "date", Value: a.BuildDate()},
		{Label: "commit", Value: a.BuildCommit()},
	}
}

// String renders a one-line summary such as "1.2.0 (abc123, 2026-10-16)".
func (a AppBuildInfo) String() string {
	return a.BuildVersion() + " (" + a.BuildCommit() + ", " + a.BuildDate() + ")"
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
