// Package store defines the persistence interfaces for the application's
// entities along with the sentinel errors shared by all implementations.
// Concrete implementations live in internal/platform.
package store
