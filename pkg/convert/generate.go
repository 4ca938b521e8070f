//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/peoplemap --repository.default-branch master --repository.path /pkg/convert

// Package convert turns raw directory records from each upstream source into
// canonical people.PersonInfo values.
package convert
