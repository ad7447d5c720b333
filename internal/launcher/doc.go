// Package launcher starts the interactive ssh session for a resolved host
// definition. The Launcher interface lets the command layer swap in a fake
// during tests.
package launcher
