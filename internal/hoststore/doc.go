// Package hoststore implements the path-addressed tree of host connection
// profiles behind runssh.
//
// The tree is rooted at a Group. A Group maps segment names to either another
// Group or a HostDef leaf, so a Path such as client => dc1 => web resolves by
// successive child lookups from the root. The Store loads the whole tree from
// a single CBOR file on Open and writes it back after every successful
// mutation, keeping a copy of the previous file at <file>.bak. Export and
// import use a YAML interchange document validated by package schema.
//
// A Store is not safe for concurrent use and assumes a single process owns
// the file.
package hoststore
