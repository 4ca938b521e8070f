package sources

// GSuiteUserName is the structured name of a directory user.
type GSuiteUserName struct {
	GivenName  string `json:"givenName,omitempty" yaml:"givenName,omitempty"`
	FamilyName string `json:"familyName,omitempty" yaml:"familyName,omitempty"`
	FullName   string `json:"fullName,omitempty" yaml:"fullName,omitempty"`
}

// GSuiteUserEmail is one address of a directory user.
type GSuiteUserEmail struct {
	Address string `json:"address" yaml:"address"`
	Primary bool   `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// GSuiteUserPhone is one phone number of a directory user.
type GSuiteUserPhone struct {
	Value string `json:"value" yaml:"value"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

// GSuiteUserOrganization is an organization entry of a directory user.
type GSuiteUserOrganization struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
	Location   string `json:"location,omitempty" yaml:"location,omitempty"`
	Primary    bool   `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// GSuiteAdminUser is a user returned by the G Suite Admin directory API.
type GSuiteAdminUser struct {
	ID            string                   `json:"id" yaml:"id"`
	PrimaryEmail  string                   `json:"primaryEmail,omitempty" yaml:"primaryEmail,omitempty"`
	Name          *GSuiteUserName          `json:"name,omitempty" yaml:"name,omitempty"`
	Emails        []GSuiteUserEmail        `json:"emails,omitempty" yaml:"emails,omitempty"`
	Phones        []GSuiteUserPhone        `json:"phones,omitempty" yaml:"phones,omitempty"`
	Organizations []GSuiteUserOrganization `json:"organizations,omitempty" yaml:"organizations,omitempty"`
	OrgUnitPath   string                   `json:"orgUnitPath,omitempty" yaml:"orgUnitPath,omitempty"`
	Suspended     bool                     `json:"suspended,omitempty" yaml:"suspended,omitempty"`
}

// GSuiteAdminResolver uses the directory user id verbatim.
type GSuiteAdminResolver struct{}

// Source implements Resolver.
func (GSuiteAdminResolver) Source() ID { return GSuiteAdmin }

// Identity implements Resolver.
func (GSuiteAdminResolver) Identity(u GSuiteAdminUser) (string, error) {
	return verbatim(GSuiteAdmin, u.ID)
}
