// Package service contains the facade of the listing platform: the single
// place where cross-entity business rules live.
//
// The facade is constructed once at startup from the entity stores, the
// database handle used to open transactions, a password hasher and a logger,
// and is passed to the HTTP layer explicitly. Every mutating operation runs
// inside one transaction, loads its target, asks internal/authz whether the
// actor may proceed and only then writes. Errors are wrapped, never masked:
// callers classify them with errors.Is against the sentinels of the domain,
// store, authz and service packages.
package service
