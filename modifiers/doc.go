// Package modifiers provides ready-made modifier functions for
// [modmap.Config] chains. The string modifiers are total: input that
// does not match (an unparsable address, a malformed email) passes
// through unchanged instead of failing, so a chain never aborts on
// messy data.
package modifiers
