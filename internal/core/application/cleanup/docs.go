// Package cleanup reconciles remote storage after an entity loses assets.
//
// Callers detach assets in the database first, then hand the detached set to
// Orchestrator.Reconcile. Deletes run concurrently with a bounded worker count
// and the resulting Report keeps the input order. Storage and database are not
// kept transactionally consistent: a failed delete leaves an orphaned object
// that is visible in the report and the logs.
package cleanup
