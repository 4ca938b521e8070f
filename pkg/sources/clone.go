package sources

import "slices"

// Clone returns a copy of e. Every field is a string, so the copy is already
// independent; the method lets raw collections clone all sources alike.
func (e BambooEmployee) Clone() BambooEmployee {
	return e
}

// Clone returns a copy of c that shares no pointers or slices with it.
func (c GoogleContactsEntry) Clone() GoogleContactsEntry {
	out := c
	out.ID = cloneText(c.ID)
	out.Title = cloneText(c.Title)
	if c.Name != nil {
		out.Name = &GDataName{
			GivenName:  cloneText(c.Name.GivenName),
			FamilyName: cloneText(c.Name.FamilyName),
			FullName:   cloneText(c.Name.FullName),
		}
	}
	out.Emails = slices.Clone(c.Emails)
	out.Phones = slices.Clone(c.Phones)
	if c.Organizations != nil {
		out.Organizations = make([]GDataOrganization, len(c.Organizations))
		for i, o := range c.Organizations {
			out.Organizations[i] = GDataOrganization{
				OrgName:  cloneText(o.OrgName),
				OrgTitle: cloneText(o.OrgTitle),
			}
		}
	}
	return out
}

func cloneText(t *GDataText) *GDataText {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// Clone returns a copy of u that shares no pointers or slices with it.
func (u GSuiteAdminUser) Clone() GSuiteAdminUser {
	out := u
	if u.Name != nil {
		name := *u.Name
		out.Name = &name
	}
	out.Emails = slices.Clone(u.Emails)
	out.Phones = slices.Clone(u.Phones)
	out.Organizations = slices.Clone(u.Organizations)
	return out
}
