package vscode

import "errors"

var (
	// ErrLocationNotFound means no candidate store exists on disk.
	ErrLocationNotFound = errors.New("recently-opened store not found")
	// ErrStoreRead wraps I/O and database failures while reading a store.
	ErrStoreRead = errors.New("reading recently-opened store")
	// ErrParse wraps malformed JSON in a store.
	ErrParse = errors.New("parsing recently-opened store")
)
