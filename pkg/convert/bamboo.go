package convert

import (
	"github.com/agentstation/peoplemap/pkg/people"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// FromBamboo converts a BambooHR employee. The preferred name, when set,
// replaces the first name.
func FromBamboo(e sources.BambooEmployee) (people.PersonInfo, error) {
	id, err := sources.BambooResolver{}.Identity(e)
	if err != nil {
		return people.PersonInfo{}, err
	}

	given := normalizeName(e.FirstName)
	if e.PreferredName != "" {
		given = normalizeName(e.PreferredName)
	}
	family := normalizeName(e.LastName)

	p := people.PersonInfo{
		Source:      sources.Bamboo,
		ID:          id,
		GivenName:   given,
		FamilyName:  family,
		DisplayName: displayName(given, family, e.DisplayName),
		JobTitle:    e.JobTitle,
		Department:  e.Department,
		Location:    e.Location,
	}
	p.Emails = appendUnique(p.Emails, normalizeEmail(e.WorkEmail))
	p.Phones = appendUnique(p.Phones, e.WorkPhone, e.MobilePhone)
	return p, nil
}

// FromBambooBatch converts a directory page, dropping employees without an id.
func FromBambooBatch(es []sources.BambooEmployee) ([]people.PersonInfo, []error) {
	return Batch(es, FromBamboo)
}
