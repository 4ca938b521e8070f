package sources

import (
	"slices"

	"github.com/agentstation/peoplemap/pkg/errors"
)

// ID identifies one of the supported person-directory sources.
type ID string

// String returns the string representation of a source id.
func (id ID) String() string {
	return string(id)
}

// Supported sources.
const (
	// Bamboo is the BambooHR employee directory (HR system).
	Bamboo ID = "bamboo"

	// GoogleContacts is the Google Contacts feed.
	GoogleContacts ID = "google"

	// GSuiteAdmin is the G Suite Admin directory.
	GSuiteAdmin ID = "gsuiteAdmin"
)

// IDs returns all supported source ids in a stable order.
func IDs() []ID {
	return []ID{
		Bamboo,
		GoogleContacts,
		GSuiteAdmin,
	}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Label returns a human readable name for the source.
func (id ID) Label() string {
	switch id {
	case Bamboo:
		return "BambooHR"
	case GoogleContacts:
		return "Google Contacts"
	case GSuiteAdmin:
		return "G Suite Admin"
	default:
		return string(id)
	}
}

// Parse validates s as a source id.
func Parse(s string) (ID, error) {
	id := ID(s)
	if !id.IsValid() {
		return "", errors.NewValidationError("source", s, "unknown source, expected one of bamboo, google, gsuiteAdmin")
	}
	return id, nil
}
