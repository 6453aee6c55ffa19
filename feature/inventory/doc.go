// Package inventory exposes the pantry over HTTP: the current snapshot,
// manual corrections, the unresolved queue and the scan history.
//
// # Curation
//
// Scanning alone cannot name every item. Raw values without an identity
// binding are parked in the unresolved queue; Resolve binds them and replays
// the parked evidence through the reconciliation engine so the inventory
// catches up without a rescan. Manual entries are trusted observations with
// confidence 1 and replace the stored quantity outright.
package inventory
