// Package domain contains the core business entities of the listing
// platform: users, amenities, places and reviews.
//
// Every entity embeds an Audit value carrying its identity and timestamps,
// validates its own invariants on construction and on update, and exposes an
// explicit table of mutable fields. Relationships are held as identifiers;
// collections such as "the reviews of a place" are store queries, not
// in-memory back-references.
package domain
