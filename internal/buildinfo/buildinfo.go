// Package buildinfo prints the ldflags-injected build identification.
package buildinfo

import "fmt"

// PrintBuildInfo prints version, date and commit, substituting "N/A" for
// anything the build did not set.
func PrintBuildInfo(version, date, commit string) {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	fmt.Printf("Build version: %s\n", version)
	fmt.Printf("Build date: %s\n", date)
	fmt.Printf("Build commit: %s\n", commit)
}
