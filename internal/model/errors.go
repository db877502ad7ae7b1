package model

import "errors"

var (
	// ErrNotFound is returned when a thought, reply, like, channel or
	// message does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for malformed input (empty content, bad id,
	// bad date format). Never persisted, never retried.
	ErrValidation = errors.New("validation failed")

	// ErrPermission is returned when the bot lacks rights on the target
	// channel or thread. Never retried automatically.
	ErrPermission = errors.New("permission denied")

	// ErrTransient covers rate limits and temporary network failures.
	// Only mirror replication retries on it.
	ErrTransient = errors.New("transient external error")

	// ErrCorruptRecord marks a malformed persisted row or file. The record
	// is skipped and processing continues.
	ErrCorruptRecord = errors.New("corrupt record")
)
