package local

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/agentstation/peoplemap/pkg/people"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// Matches reports whether p matches query. Names, emails, title and department
// are compared case-insensitively; an empty query matches everyone.
func Matches(p people.PersonInfo, query string) bool {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	fields := append([]string{p.DisplayName, p.GivenName, p.FamilyName, p.JobTitle, p.Department}, p.Emails...)
	for _, field := range fields {
		if strings.Contains(fold.String(field), q) {
			return true
		}
	}
	return false
}

// Filter narrows r to the people matching query, keeping only the raw records
// behind them. A failed result is returned unchanged.
func (r Result) Filter(query string) Result {
	if r.Err != nil {
		return r
	}
	out := Result{Source: r.Source, File: r.File, Dropped: r.Dropped}
	keep := map[string]bool{}
	for _, p := range r.Data {
		if Matches(p, query) {
			out.Data = append(out.Data, p)
			keep[p.ID] = true
		}
	}

	resolvers := sources.DefaultResolvers()
	if batch, ok := r.Raw.Bamboo.Get(); ok {
		out.Raw.Bamboo = sources.Some(keepRaw(batch, resolvers.Bamboo, keep))
	}
	if batch, ok := r.Raw.GoogleContacts.Get(); ok {
		out.Raw.GoogleContacts = sources.Some(keepRaw(batch, resolvers.GoogleContacts, keep))
	}
	if batch, ok := r.Raw.GSuiteAdmin.Get(); ok {
		out.Raw.GSuiteAdmin = sources.Some(keepRaw(batch, resolvers.GSuiteAdmin, keep))
	}
	return out
}

func keepRaw[R any](batch []R, resolver sources.Resolver[R], keep map[string]bool) []R {
	var out []R
	for _, rec := range batch {
		id, err := resolver.Identity(rec)
		if err == nil && keep[id] {
			out = append(out, rec)
		}
	}
	return out
}

// Combine folds successful results into one canonical batch and one raw
// batch carrying every source that loaded. Failed results are skipped.
func Combine(results []Result) ([]people.PersonInfo, people.RawBatch) {
	var data []people.PersonInfo
	var raw people.RawBatch
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		data = append(data, r.Data...)
		if r.Raw.Bamboo.IsPresent() {
			raw.Bamboo = r.Raw.Bamboo
		}
		if r.Raw.GoogleContacts.IsPresent() {
			raw.GoogleContacts = r.Raw.GoogleContacts
		}
		if r.Raw.GSuiteAdmin.IsPresent() {
			raw.GSuiteAdmin = r.Raw.GSuiteAdmin
		}
	}
	return data, raw
}

// Find returns the person with the given source id and the raw record
// behind it.
func (r Result) Find(id string) (people.PersonInfo, people.RawItem, bool) {
	var item people.RawItem
	for _, p := range r.Data {
		if p.ID != id {
			continue
		}
		resolvers := sources.DefaultResolvers()
		if batch, ok := r.Raw.Bamboo.Get(); ok {
			if rec, ok := findRaw(batch, resolvers.Bamboo, id); ok {
				item.Bamboo = sources.Some(rec)
			}
		}
		if batch, ok := r.Raw.GoogleContacts.Get(); ok {
			if rec, ok := findRaw(batch, resolvers.GoogleContacts, id); ok {
				item.GoogleContacts = sources.Some(rec)
			}
		}
		if batch, ok := r.Raw.GSuiteAdmin.Get(); ok {
			if rec, ok := findRaw(batch, resolvers.GSuiteAdmin, id); ok {
				item.GSuiteAdmin = sources.Some(rec)
			}
		}
		return p, item, true
	}
	return people.PersonInfo{}, item, false
}

func findRaw[R any](batch []R, resolver sources.Resolver[R], id string) (R, bool) {
	for _, rec := range batch {
		if got, err := resolver.Identity(rec); err == nil && got == id {
			return rec, true
		}
	}
	var zero R
	return zero, false
}
