// Package postgres contains the PostgreSQL implementations of the store
// interfaces, using the pgx stdlib driver through database/sql.
package postgres
