package people

import (
	"github.com/agentstation/peoplemap/pkg/collection"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// RawBatch carries, per source, an optional batch of raw records. An absent
// batch leaves that source's raw collection untouched; an empty one is a no-op
// merge.
type RawBatch struct {
	Bamboo         sources.Optional[[]sources.BambooEmployee]
	GoogleContacts sources.Optional[[]sources.GoogleContactsEntry]
	GSuiteAdmin    sources.Optional[[]sources.GSuiteAdminUser]
}

// RawItem carries, per source, an optional single raw record.
type RawItem struct {
	Bamboo         sources.Optional[sources.BambooEmployee]
	GoogleContacts sources.Optional[sources.GoogleContactsEntry]
	GSuiteAdmin    sources.Optional[sources.GSuiteAdminUser]
}

// MergeReport describes what a merge stored and skipped.
type MergeReport struct {
	Data collection.MergeResult                    `json:"data" yaml:"data"`
	Raw  sources.PerSource[collection.MergeResult] `json:"raw" yaml:"raw"`
}

// Skipped returns the total number of records rejected for lack of identity.
func (r MergeReport) Skipped() int {
	n := len(r.Data.Skipped)
	r.Raw.Each(func(_ sources.ID, res collection.MergeResult) {
		n += len(res.Skipped)
	})
	return n
}

// SkipErrors returns the identity errors of every skipped record.
func (r MergeReport) SkipErrors() []error {
	var errs []error
	for _, s := range r.Data.Skipped {
		errs = append(errs, s.Err)
	}
	r.Raw.Each(func(_ sources.ID, res collection.MergeResult) {
		for _, s := range res.Skipped {
			errs = append(errs, s.Err)
		}
	})
	return errs
}

// MergeBatch merges a canonical batch into s.Data and every present raw batch
// into its source's raw collection using that source's resolver.
func MergeBatch(s *State, data []PersonInfo, raw RawBatch, resolvers sources.Resolvers) MergeReport {
	var report MergeReport
	report.Data = collection.Merge(&s.Data, data, personIdentity)

	if batch, ok := raw.Bamboo.Get(); ok {
		report.Raw.Bamboo = collection.Merge(&s.Raw.Bamboo, batch, resolvers.Bamboo.Identity)
	}
	if batch, ok := raw.GoogleContacts.Get(); ok {
		report.Raw.GoogleContacts = collection.Merge(&s.Raw.GoogleContacts, batch, resolvers.GoogleContacts.Identity)
	}
	if batch, ok := raw.GSuiteAdmin.Get(); ok {
		report.Raw.GSuiteAdmin = collection.Merge(&s.Raw.GSuiteAdmin, batch, resolvers.GSuiteAdmin.Identity)
	}
	return report
}

// MergeItem upserts one canonical record and every present raw record.
func MergeItem(s *State, data PersonInfo, raw RawItem, resolvers sources.Resolvers) MergeReport {
	var report MergeReport
	report.Data = createOne(&s.Data, data, personIdentity)

	if item, ok := raw.Bamboo.Get(); ok {
		report.Raw.Bamboo = createOne(&s.Raw.Bamboo, item, resolvers.Bamboo.Identity)
	}
	if item, ok := raw.GoogleContacts.Get(); ok {
		report.Raw.GoogleContacts = createOne(&s.Raw.GoogleContacts, item, resolvers.GoogleContacts.Identity)
	}
	if item, ok := raw.GSuiteAdmin.Get(); ok {
		report.Raw.GSuiteAdmin = createOne(&s.Raw.GSuiteAdmin, item, resolvers.GSuiteAdmin.Identity)
	}
	return report
}

func createOne[T any](s *collection.State[T], item T, idOf collection.IdentityFunc[T]) collection.MergeResult {
	if err := collection.Create(s, item, idOf); err != nil {
		return collection.MergeResult{Skipped: []collection.Skip{{Index: 0, Err: err}}}
	}
	return collection.MergeResult{Merged: 1}
}
