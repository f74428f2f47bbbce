// Package share builds outbound social share URLs for a revealed round.
//
// A Builder never performs network I/O and never fails: when no uploaded
// image URL is available the link degrades to a fixed generic destination.
// Opening the URL is the caller's job.
package share
