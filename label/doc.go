// Package label provides strongly-typed, validated identity components for
// package objects.
//
// All types in this package are immutable and validate their values at
// construction time. Zero values are generally invalid; use the constructor
// functions (NewIdent, ParseIdent, ParseKind, ...) to create valid instances.
//
// # Types
//
// The main types are:
//   - [Kind]: the object kind (package, patch, pattern, product, srcpackage, application)
//   - [Ident]: the canonical (kind, name) grouping key
//   - [Arch]: a machine architecture with a compatibility table
//
// # Canonical identity
//
// Every alternate way of naming an identity collapses into one [Ident]:
//
//	label.PackageIdent("amarok")            // package amarok
//	label.NewIdent(label.KindPatch, "amarok")
//	label.ParseIdent("patch:amarok")        // patch amarok
//
// The string form is the plain name for packages and "kind:name" for every
// other kind.
package label
