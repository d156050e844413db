// Package errors provides the classified error primitives used across tim.
//
// Every failure that crosses a package boundary is a ClassifiedError built
// with the fluent ErrorBuilder, so the CLI can pick an exit code and a log
// level without string matching.
//
// Example usage:
//
//	err := errors.FileSystemError("content file is NOT open").
//		WithContext("path", contentPath).
//		WithCause(openErr).
//		Build()
package errors
