//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests are compiled only with the integration build tag and are skipped
// when no database URL is configured:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t) // skips without a database
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The schema is migrated once per test binary with the application's
// embedded goose migrations. WithTx rolls back after each test, so store
// tests need no cleanup. Tests that exercise code opening its own
// transactions (the facade) call ResetTables instead.
//
// Environment variables, in order of precedence:
//
//   - HBNB_TEST_DATABASE_URL
//   - DATABASE_URL
package testdb
