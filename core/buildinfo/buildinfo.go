// Package buildinfo exposes build metadata injected via -ldflags.
package buildinfo

var (
	// Commit is the git commit the binary was built from.
	Commit = "unknown"
	// Date is the build timestamp.
	Date = "unknown"
)
