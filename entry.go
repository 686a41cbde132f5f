package alloydoc

import "strings"

// Entry represents one documented type in the catalog.
type Entry struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases"`
	Tags    []string `json:"tags,omitempty" yaml:"tags"`
	Summary string   `json:"summary" yaml:"summary"`

	// BodyRef points at the document section holding the full text,
	// formatted as "<document uri>#<section anchor>".
	BodyRef string `json:"body_ref" yaml:"body_ref"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return Errorf(EINVALID, "entry id required")
	}
	if strings.TrimSpace(e.Name) == "" {
		return Errorf(EINVALID, "entry %q: name required", e.ID)
	}
	for _, alias := range e.Aliases {
		if strings.TrimSpace(alias) == "" {
			return Errorf(EINVALID, "entry %q: empty alias", e.ID)
		}
	}
	for _, tag := range e.Tags {
		if strings.TrimSpace(tag) == "" {
			return Errorf(EINVALID, "entry %q: empty tag", e.ID)
		}
	}
	if strings.TrimSpace(e.BodyRef) == "" {
		return Errorf(EINVALID, "entry %q: body reference required", e.ID)
	}
	return nil
}

// DocumentURI returns the document part of the entry's body reference.
func (e *Entry) DocumentURI() string {
	uri, _ := SplitBodyRef(e.BodyRef)
	return uri
}

// TypeURIPrefix prefixes entry ids so they double as resource URIs.
const TypeURIPrefix = "alloy://type/"

// SplitBodyRef splits a body reference into its document URI and section
// anchor. The anchor is empty when the reference names a whole document.
func SplitBodyRef(ref string) (uri, anchor string) {
	uri, anchor, _ = strings.Cut(ref, "#")
	return uri, anchor
}

// Field identifies which part of an entry produced a match.
type Field int

// Field constants.
const (
	FieldNone Field = iota
	FieldName
	FieldAlias
	FieldTag
)

// String returns the wire name of the field.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldAlias:
		return "alias"
	case FieldTag:
		return "tag"
	default:
		return ""
	}
}

// MarshalText encodes the field as its wire name.
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
