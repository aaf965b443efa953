package htmlcheck

// DefaultChecksFile is the selector list used when none is given.
const DefaultChecksFile = "checks.json"

// Config is the configuration of a single check run.
type Config struct {
	// Checks is the path of the selector list file.
	Checks string

	// File is the path of a local HTML file. Mutually exclusive with URL.
	File string

	// URL is the address of a page to fetch. Mutually exclusive with File.
	URL string
}

// Validate returns EUSAGE unless exactly one of File and URL is set.
func (c Config) Validate() error {
	if (c.File == "") == (c.URL == "") {
		return Errorf(EUSAGE, "Input only 1 file or url to check. Exiting.")
	}
	return nil
}

// ChecksFile returns the selector list path, falling back to DefaultChecksFile.
func (c Config) ChecksFile() string {
	if c.Checks == "" {
		return DefaultChecksFile
	}
	return c.Checks
}
