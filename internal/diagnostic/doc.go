// Package diagnostic provides structured errors and warnings produced while
// checking exposure definition files.
//
// Key capabilities:
//   - Unknown option reports with closest recognized names
//   - Deprecated option warnings
//   - Duplicate exposure warnings
package diagnostic
