// Package mocks provides in-memory implementations of the store
// interfaces for tests that exercise services and handlers without a
// database.
package mocks
