package people

import (
	"strings"

	"github.com/agentstation/peoplemap/pkg/errors"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// PersonInfo is the canonical, source-agnostic representation of a person.
type PersonInfo struct {
	Source      sources.ID `json:"source" yaml:"source"`
	ID          string     `json:"id" yaml:"id"`
	DisplayName string     `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	GivenName   string     `json:"givenName,omitempty" yaml:"givenName,omitempty"`
	FamilyName  string     `json:"familyName,omitempty" yaml:"familyName,omitempty"`
	Emails      []string   `json:"emails,omitempty" yaml:"emails,omitempty"`
	Phones      []string   `json:"phones,omitempty" yaml:"phones,omitempty"`
	JobTitle    string     `json:"jobTitle,omitempty" yaml:"jobTitle,omitempty"`
	Department  string     `json:"department,omitempty" yaml:"department,omitempty"`
	Location    string     `json:"location,omitempty" yaml:"location,omitempty"`
}

// Ref returns the minimal {source, id} payload addressing p.
func (p PersonInfo) Ref() Ref {
	return Ref{Source: p.Source, ID: p.ID}
}

// Clone returns a copy that shares no slices with p.
func (p PersonInfo) Clone() PersonInfo {
	out := p
	if p.Emails != nil {
		out.Emails = append([]string(nil), p.Emails...)
	}
	if p.Phones != nil {
		out.Phones = append([]string(nil), p.Phones...)
	}
	return out
}

// Ref is the minimal payload carried by single-person actions.
type Ref struct {
	Source sources.ID `json:"source" yaml:"source"`
	ID     string     `json:"id" yaml:"id"`
}

const keySeparator = ":"

// Key returns the canonical identity, "<source>:<id>".
func (r Ref) Key() string {
	return r.Source.String() + keySeparator + r.ID
}

// String implements fmt.Stringer.
func (r Ref) String() string {
	return r.Key()
}

// Validate reports whether r can address a stored person.
func (r Ref) Validate() error {
	if !r.Source.IsValid() {
		return errors.NewValidationError("source", r.Source.String(), errors.ErrUnknownSource.Error())
	}
	if r.ID == "" {
		return errors.NewIdentityError(r.Source.String(), "id", "", "identifier is absent")
	}
	return nil
}

// ParseKey is the inverse of Ref.Key.
func ParseKey(key string) (Ref, error) {
	source, id, ok := strings.Cut(key, keySeparator)
	if !ok {
		return Ref{}, errors.NewValidationError("key", key, "expected <source>:<id>")
	}
	ref := Ref{Source: sources.ID(source), ID: id}
	if err := ref.Validate(); err != nil {
		return Ref{}, err
	}
	return ref, nil
}

// Identity returns the canonical identity of a full record.
func Identity(p PersonInfo) string {
	return p.Ref().Key()
}

// RefIdentity returns the canonical identity of a minimal payload. It equals
// Identity(p) whenever ref has p's source and id.
func RefIdentity(ref Ref) string {
	return ref.Key()
}

// personIdentity is the collection identity function for canonical records.
func personIdentity(p PersonInfo) (string, error) {
	ref := p.Ref()
	if err := ref.Validate(); err != nil {
		return "", err
	}
	return ref.Key(), nil
}
