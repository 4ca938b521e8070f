package sources

import "github.com/agentstation/peoplemap/pkg/errors"

// Resolver derives the stable identity of a raw record of type R.
// A non-nil error means the record must not be stored.
type Resolver[R any] interface {
	Source() ID
	Identity(R) (string, error)
}

// Resolvers holds one resolver per source. Adding a source adds a field here,
// so every merge site has to handle it.
type Resolvers struct {
	Bamboo         Resolver[BambooEmployee]
	GoogleContacts Resolver[GoogleContactsEntry]
	GSuiteAdmin    Resolver[GSuiteAdminUser]
}

// DefaultResolvers returns the standard identity rule for each source.
func DefaultResolvers() Resolvers {
	return Resolvers{
		Bamboo:         BambooResolver{},
		GoogleContacts: GoogleContactsResolver{},
		GSuiteAdmin:    GSuiteAdminResolver{},
	}
}

func verbatim(source ID, id string) (string, error) {
	if id == "" {
		return "", errors.NewIdentityError(source.String(), "id", "", "identifier is absent")
	}
	return id, nil
}
