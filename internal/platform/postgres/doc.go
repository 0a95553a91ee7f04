// Package postgres implements the store interfaces against a PostgreSQL
// database using database/sql with the pgx driver.
//
// All mutations are single-statement inserts using RETURNING to repopulate
// database-generated fields on the caller's struct. Constraint violations
// are translated into the sentinel errors defined by the store package:
// unique-violation on users.email becomes store.ErrEmailExists, and a
// foreign-key violation on items.owner_id becomes store.ErrUserNotFound.
package postgres
