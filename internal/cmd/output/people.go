package output

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/peoplemap/pkg/people"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// PeopleTable lists people with their pending update and delete markers.
// The wide form adds phones, department and location.
func PeopleTable(state people.State, ps []people.PersonInfo, wide bool) Data {
	headers := []string{"Key", "Name", "Email", "Title", "Status"}
	if wide {
		headers = append(headers, "Phone", "Department", "Location")
	}

	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		row := []string{
			people.Identity(p),
			p.DisplayName,
			strings.Join(p.Emails, ", "),
			p.JobTitle,
			personStatus(state, p.Ref()),
		}
		if wide {
			row = append(row, strings.Join(p.Phones, ", "), p.Department, p.Location)
		}
		rows = append(rows, row)
	}
	return Data{Headers: headers, Rows: rows}
}

func personStatus(state people.State, ref people.Ref) string {
	var marks []string
	if state.IsUpdating(ref) {
		marks = append(marks, "updating")
	}
	if state.IsDeleting(ref) {
		marks = append(marks, "deleting")
	}
	return strings.Join(marks, ",")
}

// SourcesTable summarizes the lifecycle flags and raw record count of
// every source.
func SourcesTable(state people.State) Data {
	caser := cases.Title(language.English)
	rows := make([][]string, 0, len(sources.IDs()))
	for _, id := range sources.IDs() {
		loading, _ := state.Loading.Get(id)
		loaded, _ := state.Loaded.Get(id)
		failed, _ := state.Error.Get(id)
		creating, _ := state.Creating.Get(id)
		rows = append(rows, []string{
			id.Label(),
			caser.String(strconv.FormatBool(loading)),
			caser.String(strconv.FormatBool(loaded)),
			caser.String(strconv.FormatBool(failed)),
			caser.String(strconv.FormatBool(creating)),
			strconv.Itoa(state.Raw.Len(id)),
		})
	}
	return Data{
		Headers:         []string{"Source", "Loading", "Loaded", "Error", "Creating", "Raw"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignCenter, AlignCenter, AlignCenter, AlignCenter, AlignRight},
	}
}

// PersonTable renders one person as property/value rows, ending with the
// pending update and delete markers held for it in state.
func PersonTable(state people.State, p people.PersonInfo) Data {
	rows := [][]string{
		{"Key", people.Identity(p)},
		{"Source", p.Source.Label()},
		{"Name", p.DisplayName},
		{"Given Name", p.GivenName},
		{"Family Name", p.FamilyName},
		{"Emails", strings.Join(p.Emails, ", ")},
		{"Phones", strings.Join(p.Phones, ", ")},
		{"Title", p.JobTitle},
		{"Department", p.Department},
		{"Location", p.Location},
		{"Status", personStatus(state, p.Ref())},
	}
	return Data{Headers: []string{"Property", "Value"}, Rows: rows}
}
