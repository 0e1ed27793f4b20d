// Package common contains shared utilities and types used across filesystem packages:
// sentinel errors, path helpers and per-run counters.
//
// Use constructors like common.NewPathUtils() to create instances.
package common
