// pkg/sderr/wrap.go

package sderr

import (
	cerr "github.com/cockroachdb/errors"
)

func WrapConfigError(err error) error {
	return cerr.WithHint(cerr.WithStack(err), "engine configuration rejected")
}

func WrapAdapterError(err error, standard string) error {
	return cerr.WithHint(cerr.WithStack(err), "metadata adaptation from "+standard+" failed")
}

// NewUsageError reports a programmer error (wrong argument types, nil
// receivers). Data problems must never travel this path.
func NewUsageError(format string, args ...interface{}) error {
	return cerr.WithHint(cerr.Newf(format, args...), "engine misuse, not a data problem")
}
