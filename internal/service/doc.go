// Package service contains the application services that sit between the
// HTTP boundary and the stores. Services enforce ownership on every task
// operation and compute pagination metadata.
package service
