// Package store implements the attribute store adapter over the telephony
// driver's sysfs attribute tree, plus an in-memory store used in tests.
//
// Each device is a directory under the store root carrying up to three
// attribute files: hardware_id and location (both optional) and spantype,
// which holds one "<span>:<type>" line per span. Writing a "<span>:<type>"
// line back to spantype reassigns that span's line mode; the driver rejects
// writes to spans that are already active.
package store
