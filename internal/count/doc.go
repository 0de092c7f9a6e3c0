// Package count reads a single text stream and counts its lines. Input
// bytes pass through an explicit decode-error policy, so callers decide
// what happens to bytes that are not valid UTF-8 instead of inheriting
// whatever the reader does by default.
package count
