package utils

import (
	"errors"
	"io/fs"
)

// ErrorKind classifies file errors the way the checker reports them.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNotFound
	KindPermissionDenied
)

var kindDescriptions = map[ErrorKind]string{
	KindOther:            "unknown error",
	KindNotFound:         "file not found",
	KindPermissionDenied: "permission denied",
}

// String returns the human readable description used in error lines
func (k ErrorKind) String() string {
	if desc, ok := kindDescriptions[k]; ok {
		return desc
	}
	return kindDescriptions[KindOther]
}

// ClassifyError maps any error to one of the three kinds.
// Wrapped errors are unwrapped with errors.Is.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	default:
		return KindOther
	}
}
