package sources

import (
	"strings"

	"github.com/agentstation/peoplemap/pkg/errors"
)

// GDataText is the {"$t": "..."} wrapper the contacts feed uses for scalar values.
type GDataText struct {
	T string `json:"$t" yaml:"$t"`
}

// GDataName is the structured name of a contact.
type GDataName struct {
	GivenName  *GDataText `json:"gd$givenName,omitempty" yaml:"gd$givenName,omitempty"`
	FamilyName *GDataText `json:"gd$familyName,omitempty" yaml:"gd$familyName,omitempty"`
	FullName   *GDataText `json:"gd$fullName,omitempty" yaml:"gd$fullName,omitempty"`
}

// GDataEmail is one email address of a contact.
type GDataEmail struct {
	Address string `json:"address" yaml:"address"`
	Primary string `json:"primary,omitempty" yaml:"primary,omitempty"`
	Rel     string `json:"rel,omitempty" yaml:"rel,omitempty"`
}

// GDataPhone is one phone number of a contact.
type GDataPhone struct {
	T   string `json:"$t" yaml:"$t"`
	Rel string `json:"rel,omitempty" yaml:"rel,omitempty"`
}

// GDataOrganization is the employer block of a contact.
type GDataOrganization struct {
	OrgName  *GDataText `json:"gd$orgName,omitempty" yaml:"gd$orgName,omitempty"`
	OrgTitle *GDataText `json:"gd$orgTitle,omitempty" yaml:"gd$orgTitle,omitempty"`
}

// GoogleContactsEntry is a single entry of the Google Contacts feed.
// ID holds a URL such as https://www.google.com/m8/feeds/contacts/me/base/XYZ123.
type GoogleContactsEntry struct {
	ID            *GDataText          `json:"id,omitempty" yaml:"id,omitempty"`
	Title         *GDataText          `json:"title,omitempty" yaml:"title,omitempty"`
	Name          *GDataName          `json:"gd$name,omitempty" yaml:"gd$name,omitempty"`
	Emails        []GDataEmail        `json:"gd$email,omitempty" yaml:"gd$email,omitempty"`
	Phones        []GDataPhone        `json:"gd$phoneNumber,omitempty" yaml:"gd$phoneNumber,omitempty"`
	Organizations []GDataOrganization `json:"gd$organization,omitempty" yaml:"gd$organization,omitempty"`
}

const googleIDField = "id.$t"

// GoogleContactsResolver takes the final path segment of the entry's id URL.
// Entries whose id is absent or has no final segment are rejected.
type GoogleContactsResolver struct{}

// Source implements Resolver.
func (GoogleContactsResolver) Source() ID { return GoogleContacts }

// Identity implements Resolver.
func (GoogleContactsResolver) Identity(c GoogleContactsEntry) (string, error) {
	if c.ID == nil || c.ID.T == "" {
		return "", errors.NewIdentityError(GoogleContacts.String(), googleIDField, "", "identifier is absent")
	}
	return LastPathSegment(c.ID.T)
}

// LastPathSegment returns the text after the last "/" of a URL-shaped
// identifier. At least one character must precede that slash and the segment
// must be non-empty.
func LastPathSegment(raw string) (string, error) {
	i := strings.LastIndexByte(raw, '/')
	switch {
	case i < 0:
		return "", errors.NewIdentityError(GoogleContacts.String(), googleIDField, raw, "identifier has no path separator")
	case i == 0:
		return "", errors.NewIdentityError(GoogleContacts.String(), googleIDField, raw, "identifier has no path before the final segment")
	case i == len(raw)-1:
		return "", errors.NewIdentityError(GoogleContacts.String(), googleIDField, raw, "identifier has no final path segment")
	}
	return raw[i+1:], nil
}
