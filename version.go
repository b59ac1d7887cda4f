package textsecure

import (
	"strconv"
	"strings"
)

// APIVersion identifies the server API revision a route belongs to.
type APIVersion struct {
	major   uint16
	version string
}

// Major returns the numeric revision, e.g. 2 for "v2".
func (v APIVersion) Major() int {
	return int(v.major)
}

// String returns the version prefix as written in the route, e.g. "v2".
func (v APIVersion) String() string {
	return v.version
}

// parseAPIVersion parses the leading path segment of a route template.
//
// Examples:
//   - "v1/accounts"    → APIVersion{major: 1}
//   - "v2/keys/signed" → APIVersion{major: 2}
//
// Malformed prefixes ("vx", "accounts") default to 0 and log a warning.
func parseAPIVersion(path string) APIVersion {
	segment := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(segment, '/'); i >= 0 {
		segment = segment[:i]
	}
	return APIVersion{
		major:   parseVersionSegment(strings.TrimPrefix(segment, "v"), path),
		version: segment,
	}
}

// parseVersionSegment parses a single version segment string into a uint16.
// Returns 0 and logs a warning if parsing fails.
func parseVersionSegment(segment, fullPath string) uint16 {
	i, err := strconv.ParseUint(segment, 10, 16)
	if err != nil {
		Warning("Invalid API version '%s' in route '%s', defaulting to 0", segment, fullPath)
		return 0
	}
	return uint16(i)
}

// compare returns -1, 0 or 1 as v is older, equal to or newer than other.
func (v APIVersion) compare(other APIVersion) int {
	switch {
	case v.major < other.major:
		return -1
	case v.major > other.major:
		return 1
	default:
		return 0
	}
}

// APIVersion returns the API revision of the route. The attributes suffix
// has no prefix of its own and reports the revision of the accounts route
// it is appended to. Unknown routes report version 0.
func (r Route) APIVersion() APIVersion {
	if r == RouteAttributes {
		return parseAPIVersion(AccountAttributesPath())
	}
	tmpl, ok := routeTemplates[r]
	if !ok {
		return APIVersion{}
	}
	return parseAPIVersion(tmpl)
}

// NewerThan reports whether the route belongs to a later API revision than other.
func (r Route) NewerThan(other Route) bool {
	return r.APIVersion().compare(other.APIVersion()) > 0
}
