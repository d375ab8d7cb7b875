package domain

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

var (
	requirementName = regexp.MustCompile(`^\s*([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)`)
	nameSeparators  = regexp.MustCompile(`[-_.]+`)
)

// Requirement is a dependency declaration in the packaging ecosystem's syntax,
// e.g. "requests[socks]>=2.5" or "idna==3.7". It is treated as opaque apart from
// extracting the package name.
type Requirement string

// ParseRequirement trims s and checks that it starts with a valid package name.
func ParseRequirement(s string) (Requirement, error) {
	req := Requirement(strings.TrimSpace(s))
	if _, err := req.Name(); err != nil {
		return "", err
	}
	return req, nil
}

// Name returns the normalized package name of the requirement.
func (r Requirement) Name() (string, error) {
	raw := string(r)
	m := requirementName.FindStringSubmatch(raw)
	if m == nil {
		return "", zerr.With(zerr.Wrap(ErrMalformedRequirement, "missing package name"), "requirement", raw)
	}

	// Whatever follows the name must open an extras bracket, a version specifier,
	// a marker, a URL reference, or be separated by whitespace.
	if rest := raw[len(m[0]):]; rest != "" && !strings.ContainsAny(rest[:1], " \t[(<>=!~;@") {
		return "", zerr.With(zerr.Wrap(ErrMalformedRequirement, "unexpected character after package name"),
			"requirement", raw)
	}

	return NormalizeName(m[1]), nil
}

// RequirementParts is a requirement split into the pieces a dependency table stores.
type RequirementParts struct {
	// Name is the distribution name as written, not normalized.
	Name string
	// Extras are the requested extras in the order written.
	Extras []string
	// Specifier is the version specifier without whitespace, e.g. ">=2.0,<3".
	// It is empty for a bare name or a direct URL reference.
	Specifier string
}

// Key renders the name with its extras, e.g. "requests[socks]".
func (p RequirementParts) Key() string {
	if len(p.Extras) == 0 {
		return p.Name
	}
	return p.Name + "[" + strings.Join(p.Extras, ",") + "]"
}

// Parts splits the requirement. Environment markers are dropped.
func (r Requirement) Parts() (RequirementParts, error) {
	if _, err := r.Name(); err != nil {
		return RequirementParts{}, err
	}

	raw := string(r)
	m := requirementName.FindStringSubmatch(raw)
	parts := RequirementParts{Name: m[1]}
	rest := strings.TrimSpace(raw[len(m[0]):])

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return RequirementParts{}, zerr.With(zerr.Wrap(ErrMalformedRequirement, "unterminated extras"),
				"requirement", raw)
		}
		for _, extra := range strings.Split(rest[1:end], ",") {
			if extra = strings.TrimSpace(extra); extra != "" {
				parts.Extras = append(parts.Extras, extra)
			}
		}
		rest = strings.TrimSpace(rest[end+1:])
	}

	if spec, _, found := strings.Cut(rest, ";"); found {
		rest = strings.TrimSpace(spec)
	}
	if strings.HasPrefix(rest, "@") {
		return parts, nil
	}
	if strings.HasPrefix(rest, "(") && strings.HasSuffix(rest, ")") {
		rest = rest[1 : len(rest)-1]
	}
	parts.Specifier = strings.Join(strings.Fields(rest), "")
	return parts, nil
}

// String returns the requirement as written.
func (r Requirement) String() string {
	return string(r)
}

// NormalizeName lower-cases a package name and collapses runs of "-", "_" and "."
// into a single "-", so that "Foo_Bar" and "foo-bar" index the same package.
func NormalizeName(name string) string {
	return strings.ToLower(nameSeparators.ReplaceAllString(name, "-"))
}

// SortRequirements orders requirements by normalized package name, falling back
// to the full requirement string. Unparseable entries sort by their raw text.
func SortRequirements(reqs []Requirement) {
	slices.SortFunc(reqs, func(a, b Requirement) int {
		return cmp.Or(
			strings.Compare(sortKey(a), sortKey(b)),
			strings.Compare(string(a), string(b)),
		)
	})
}

func sortKey(r Requirement) string {
	name, err := r.Name()
	if err != nil {
		return string(r)
	}
	return name
}

// ParseRequirements parses every entry of raw, failing on the first malformed one.
func ParseRequirements(raw []string) ([]Requirement, error) {
	reqs := make([]Requirement, 0, len(raw))
	for _, s := range raw {
		req, err := ParseRequirement(s)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// RequirementStrings converts requirements back to plain strings.
func RequirementStrings(reqs []Requirement) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = string(r)
	}
	return out
}
