package convert

import (
	"github.com/agentstation/peoplemap/pkg/people"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// FromGSuiteUser converts a directory user. Job details come from the
// primary organization, or the first one when none is marked primary.
func FromGSuiteUser(u sources.GSuiteAdminUser) (people.PersonInfo, error) {
	id, err := sources.GSuiteAdminResolver{}.Identity(u)
	if err != nil {
		return people.PersonInfo{}, err
	}

	p := people.PersonInfo{Source: sources.GSuiteAdmin, ID: id}

	var full string
	if u.Name != nil {
		p.GivenName = normalizeName(u.Name.GivenName)
		p.FamilyName = normalizeName(u.Name.FamilyName)
		full = u.Name.FullName
	}
	p.DisplayName = displayName(p.GivenName, p.FamilyName, full)

	p.Emails = appendUnique(p.Emails, normalizeEmail(u.PrimaryEmail))
	for _, e := range u.Emails {
		p.Emails = appendUnique(p.Emails, normalizeEmail(e.Address))
	}
	for _, ph := range u.Phones {
		p.Phones = appendUnique(p.Phones, ph.Value)
	}

	if org, ok := primaryOrganization(u.Organizations); ok {
		p.JobTitle = org.Title
		p.Department = org.Department
		p.Location = org.Location
	}
	return p, nil
}

func primaryOrganization(orgs []sources.GSuiteUserOrganization) (sources.GSuiteUserOrganization, bool) {
	for _, o := range orgs {
		if o.Primary {
			return o, true
		}
	}
	if len(orgs) > 0 {
		return orgs[0], true
	}
	return sources.GSuiteUserOrganization{}, false
}

// FromGSuiteUserBatch converts a directory page, dropping users without an id.
func FromGSuiteUserBatch(us []sources.GSuiteAdminUser) ([]people.PersonInfo, []error) {
	return Batch(us, FromGSuiteUser)
}
