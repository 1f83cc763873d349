// Package buildinfo holds version information baked into released binaries.
package buildinfo

const VERSION = "0.1.0"
