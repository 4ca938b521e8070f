package convert

import (
	"github.com/agentstation/peoplemap/pkg/people"
	"github.com/agentstation/peoplemap/pkg/sources"
)

func text(t *sources.GDataText) string {
	if t == nil {
		return ""
	}
	return t.T
}

// FromGoogleContact converts a contacts feed entry. The canonical id is the
// final segment of the entry's id URL, so it matches the raw collection key.
func FromGoogleContact(c sources.GoogleContactsEntry) (people.PersonInfo, error) {
	id, err := sources.GoogleContactsResolver{}.Identity(c)
	if err != nil {
		return people.PersonInfo{}, err
	}

	p := people.PersonInfo{Source: sources.GoogleContacts, ID: id}

	var full string
	if c.Name != nil {
		p.GivenName = normalizeName(text(c.Name.GivenName))
		p.FamilyName = normalizeName(text(c.Name.FamilyName))
		full = text(c.Name.FullName)
	}
	p.DisplayName = displayName(p.GivenName, p.FamilyName, full, text(c.Title))

	// primary address first
	for _, e := range c.Emails {
		if e.Primary == "true" {
			p.Emails = appendUnique(p.Emails, normalizeEmail(e.Address))
		}
	}
	for _, e := range c.Emails {
		p.Emails = appendUnique(p.Emails, normalizeEmail(e.Address))
	}
	for _, ph := range c.Phones {
		p.Phones = appendUnique(p.Phones, ph.T)
	}
	if len(c.Organizations) > 0 {
		p.JobTitle = text(c.Organizations[0].OrgTitle)
	}
	return p, nil
}

// FromGoogleContactBatch converts a feed page, dropping entries whose id
// cannot be resolved.
func FromGoogleContactBatch(cs []sources.GoogleContactsEntry) ([]people.PersonInfo, []error) {
	return Batch(cs, FromGoogleContact)
}
