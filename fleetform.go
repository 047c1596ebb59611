// Package fleetform holds module-level metadata.
package fleetform

// Version is the current release.
const Version = "0.2.0"
