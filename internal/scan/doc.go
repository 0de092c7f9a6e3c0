// Package scan walks a file system tree and streams the files that belong
// to one of the two recognized source categories. It owns the category
// classification and the per-category running totals, but never reads file
// contents; counting is the caller's concern.
package scan
