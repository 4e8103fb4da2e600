package ovc

import "errors"

var (
	// ErrInvalidFormat is returned when an envelope has bad magic bytes,
	// an unsupported version, or is too short to contain a header.
	ErrInvalidFormat = errors.New("invalid envelope format")

	// ErrUnknownMethod is returned when an envelope carries a method tag
	// this codec does not recognize.
	ErrUnknownMethod = errors.New("unknown compression method")

	// ErrEmptyVector is returned when an operation is given a
	// zero-dimension vector.
	ErrEmptyVector = errors.New("empty vector")

	// ErrPoolClosed is returned when work is submitted to a closed
	// worker pool.
	ErrPoolClosed = errors.New("worker pool closed")
)
