// Package errors provides the classified error primitives used across blogbuilder.
//
// Every fatal condition in a build (missing posts directory, unreadable post,
// failed write, bad configuration) is reported as a ClassifiedError so the CLI
// can print a message naming the failing path and pick an exit code from the
// error's category.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "failed to read post").
//		WithContext("path", postPath).
//		Build()
package errors
