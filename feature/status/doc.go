// Package status reports the health of every backend the service depends
// on: the detection backend, object storage, the history database and the
// catalog lookup. Checks are read only and cheap enough to run on demand;
// a disabled backend is reported as disabled, not as a failure.
package status
