// Package pkguid provides helpers for generating unique identifiers.
//
// Record ids are sequential integers owned by the transaction store, so the
// only generated identifiers here are string IDs (UUIDs) used to tag batch
// runs and benchmark reports.
package pkguid
