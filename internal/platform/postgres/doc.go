// Package postgres provides the PostgreSQL implementations of the stores
// defined in internal/store.
//
// Queries are built with goqu using the postgres dialect in prepared mode
// and executed through store.DBTX, so every store works the same way on a
// connection pool or inside a transaction. The schema is kept as goose
// migrations embedded in the binary (see Migrations).
package postgres
