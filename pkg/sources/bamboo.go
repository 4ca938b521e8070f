package sources

// BambooEmployee is an employee record as returned by the BambooHR directory.
type BambooEmployee struct {
	ID            string `json:"id" yaml:"id"`
	DisplayName   string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	FirstName     string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty" yaml:"lastName,omitempty"`
	PreferredName string `json:"preferredName,omitempty" yaml:"preferredName,omitempty"`
	JobTitle      string `json:"jobTitle,omitempty" yaml:"jobTitle,omitempty"`
	WorkPhone     string `json:"workPhone,omitempty" yaml:"workPhone,omitempty"`
	MobilePhone   string `json:"mobilePhone,omitempty" yaml:"mobilePhone,omitempty"`
	WorkEmail     string `json:"workEmail,omitempty" yaml:"workEmail,omitempty"`
	Department    string `json:"department,omitempty" yaml:"department,omitempty"`
	Location      string `json:"location,omitempty" yaml:"location,omitempty"`
	Division      string `json:"division,omitempty" yaml:"division,omitempty"`
	PhotoURL      string `json:"photoUrl,omitempty" yaml:"photoUrl,omitempty"`
}

// BambooResolver uses the employee id verbatim.
type BambooResolver struct{}

// Source implements Resolver.
func (BambooResolver) Source() ID { return Bamboo }

// Identity implements Resolver.
func (BambooResolver) Identity(e BambooEmployee) (string, error) {
	return verbatim(Bamboo, e.ID)
}
