// Package blob wraps JavaScript Blob and File objects.
package blob
