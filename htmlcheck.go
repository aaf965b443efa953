// Package htmlcheck reports which CSS selectors from a configured list match
// at least one element of an HTML document loaded from a file or a URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, json/).
package htmlcheck
