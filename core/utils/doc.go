// Package utils normalizes raw inventory text into typed values.
//
// Every parser returns a value and an error; failures are apperr parse or
// lookup errors carrying a user facing message. Parsers never retry, the
// caller decides whether to prompt again or skip the row.
//
// Format helpers are the inverse of the parsers and are used for export.
package utils
