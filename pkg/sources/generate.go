//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/peoplemap --repository.default-branch master --repository.path /pkg/sources

// Package sources describes the external person-directory sources: the closed
// set of source ids, the raw record shape each source delivers, and the
// strategy each source uses to derive a stable identity from its raw records.
package sources
