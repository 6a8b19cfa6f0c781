// Package domain defines the core business entities of the taskflow
// application (users and tasks), their validation rules, and the
// domain-level sentinel errors shared across layers.
package domain
