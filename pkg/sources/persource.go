package sources

// PerSource holds one value per supported source in fixed fields.
type PerSource[T any] struct {
	Bamboo         T `json:"bamboo" yaml:"bamboo"`
	GoogleContacts T `json:"google" yaml:"google"`
	GSuiteAdmin    T `json:"gsuiteAdmin" yaml:"gsuiteAdmin"`
}

// Flags is a boolean per source, e.g. loading or creating.
type Flags = PerSource[bool]

// Get returns the value for id. ok is false for an unknown id.
func (p PerSource[T]) Get(id ID) (value T, ok bool) {
	switch id {
	case Bamboo:
		return p.Bamboo, true
	case GoogleContacts:
		return p.GoogleContacts, true
	case GSuiteAdmin:
		return p.GSuiteAdmin, true
	default:
		return value, false
	}
}

// Set stores value for id and reports whether id is a known source.
func (p *PerSource[T]) Set(id ID, value T) bool {
	switch id {
	case Bamboo:
		p.Bamboo = value
	case GoogleContacts:
		p.GoogleContacts = value
	case GSuiteAdmin:
		p.GSuiteAdmin = value
	default:
		return false
	}
	return true
}

// Each calls fn for every source in IDs order.
func (p PerSource[T]) Each(fn func(ID, T)) {
	fn(Bamboo, p.Bamboo)
	fn(GoogleContacts, p.GoogleContacts)
	fn(GSuiteAdmin, p.GSuiteAdmin)
}

// Any reports whether any flag is set.
func Any(f Flags) bool {
	return f.Bamboo || f.GoogleContacts || f.GSuiteAdmin
}
