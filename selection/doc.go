// Package selection implements the ordering rules that pick the candidate
// and the installed representative of a Selectable.
//
// # Available objects
//
// Available objects are ordered best first by:
//
//  1. repository priority, higher first
//  2. edition, higher first
//  3. architecture preference for the system arch (native arches before
//     their compatible fallbacks, those before noarch, incompatible last)
//  4. repository insertion order, earlier first
//  5. object ID, lower first
//
// The head of that order is the default candidate.
//
// # Installed objects
//
// Installed objects are ordered by install time, newest first, ties broken
// by object ID.
//
// # Update candidates
//
// An update candidate is an available object that may replace the installed
// representative without breaking update policy: it must not be content
// identical to what is installed, must not be a downgrade, a vendor change or
// an arch change unless the [Policy] allows it. A noarch object on either
// side never counts as an arch change.
package selection
