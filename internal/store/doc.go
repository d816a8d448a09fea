// Package store defines the persistence contracts of the listing platform.
//
// Repository is the generic CRUD contract shared by every entity type; the
// entity stores extend it with the lookups the facade needs (users by email,
// reviews by place, and so on). Implementations live in
// internal/platform/postgres. Every store can be rebound to a transaction
// with WithTx, and RunInTransaction groups several store calls into one
// atomic unit of work.
package store
