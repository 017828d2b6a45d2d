// Package postgres implements the store interfaces on top of a PostgreSQL
// database accessed through database/sql with the pgx stdlib driver.
package postgres
