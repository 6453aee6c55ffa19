// Package pantry is the durable inventory of tracked items.
//
// # Model
//
// State is a map from item identity to Entry. Batches produced by the
// reconcile engine replace the quantity of every identity they mention and
// leave all other entries alone. Nothing is ever removed because it stopped
// appearing in frames. Removal happens only through an explicit Remove call
// or an explicit zero count.
//
// # Atomicity
//
// Apply stages the next state on a copy, persists the copy, and only then
// swaps it in. When persistence fails the in memory state is unchanged and
// the caller gets an error wrapping ErrPersistence, so memory and disk
// never diverge.
//
// # Persistence
//
// The Persister interface has two implementations: FilePersister writes a
// JSON document with a temp file and rename, ObjectPersister keeps the same
// document in a bucket. Loading tolerates missing files and absent fields,
// so state written by older builds still loads.
package pantry
