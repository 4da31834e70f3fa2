// Package diagnostic provides structured warnings and errors reported while
// expanding extendable enums.
//
// Key capabilities:
//   - Duplicate raw value warnings (last declared case wins)
//   - Warnings for user cases that carry no raw value
//   - Declaration file validation errors
package diagnostic
