// Package types defines the interfaces shared across bootstrap packages.
package types
