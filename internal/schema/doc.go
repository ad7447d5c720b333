// Package schema validates runssh interchange documents. The document is
// YAML, but validation runs against an embedded JSON Schema after converting
// the decoded YAML into JSON-compatible values.
package schema
