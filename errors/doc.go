// Package errors provides standardized error handling for the node identifier
// codecs and the packages built around them.
//
// # Overview
//
// Errors are classified into three classes: Transient (temporary, the caller
// may retry), Invalid (bad input, do not retry) and Fatal (unrecoverable, stop
// processing). Nothing in this module retries on its own; the class only
// informs the caller's policy.
//
// # Error Kinds
//
// The codecs report a small, stable set of kinds, each a sentinel variable
// that callers match with errors.Is:
//
//   - ErrMalformedTag: binary decode read a first byte outside 0x00..0x05
//   - ErrTruncated: fewer bytes available than a declared length requires
//   - ErrLimitExceeded: a declared length exceeds the configured limit
//   - ErrInvalidData: a structurally impossible payload (negative length, bad UTF-8)
//   - ErrNodeIDInvalid: textual parse did not match the node id grammar
//   - ErrNotConvertible: well-known id conversion against a non-matching node id
//   - ErrNullNodeID: conversion that explicitly rejects the null node id
//   - ErrAllocatorExhausted: the numeric id allocator ran out of values
//   - ErrInvalidConfig, ErrMissingConfig, ErrConfigNotFound: settings problems
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions attach a classification:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// The generic Wrap() adds context without a classification.
//
// # Classification
//
// Classify, IsTransient, IsInvalid and IsFatal look for a ClassifiedError in
// the chain first. Without one, the sentinel kinds above are invalid,
// ErrAllocatorExhausted is fatal, context errors are transient, and anything
// else is transient. Error messages are never inspected. cmd/nodeidctl turns
// the class into its exit code.
//
// # Integration with errors.As/Is
//
//	var ce *errors.ClassifiedError
//	if stderrors.As(err, &ce) {
//	    log.Printf("component=%s class=%s", ce.Component, ce.Class)
//	}
//
//	if stderrors.Is(err, errors.ErrMalformedTag) {
//	    // skip the field, keep decoding the message
//	}
//
// # Thread Safety
//
// Error variables are immutable and safe for concurrent access. A
// ClassifiedError is safe to share across goroutines after creation.
package errors
