// Package version records the bin2c release version.
package version

// Version is the version reported by `bin2c --version`.
const Version = "1.1.0"
