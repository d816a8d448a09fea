// Package authz decides whether an acting identity may perform a mutation.
//
// The policy functions are pure: they look only at the Actor and the entities
// involved, never at storage. The facade calls them inside its transactions
// after loading the target, so a missing target is reported as not found
// before any authorization decision is made.
package authz
