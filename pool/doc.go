// Package pool stores the installed and available package objects that
// Selectables are built from.
//
// A [Pool] owns every object. Callers hold [Item] values, which are cheap
// handles: the zero Item means "no object" and every accessor on it returns a
// zero value. An Item exposes the immutable attributes of its [Solvable]
// (name, edition, arch, vendor, build time, repository, ...) and a pointer to
// its mutable [Status] (transact flag, causer, lock, establish state,
// licence bit).
//
// Reload discards all objects and bumps the pool generation; any handle or
// Selectable built before a reload must not be used afterwards.
package pool
