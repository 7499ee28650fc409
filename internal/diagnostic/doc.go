// Package diagnostic provides structured errors and warnings produced while
// validating a mapping configuration.
//
// Diagnostics are collected rather than returned one at a time, so a single
// validation pass reports every problem in a mapping file:
//   - Missing or malformed queries
//   - Unknown attribute kinds and broken enumeration definitions
//   - Duplicate variant types
//   - Missing specification name attribute
package diagnostic
