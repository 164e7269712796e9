// Package preferences provides the durable key-value store used for session
// and settings data.
package preferences

import (
	"context"
)

// Key names a preference.
type Key string

const (
	KeyLoginMethod Key = "loginMethod" // The sign-in method chosen by the user
	KeyLocale      Key = "locale"      // One of the supported locale codes
	KeyUserID      Key = "userId"      // Opaque identifier of the current user
)

// Keys lists all preference keys known to the application.
var Keys = []Key{KeyLoginMethod, KeyLocale, KeyUserID}

// Known reports whether k is one of the keys in Keys.
func (k Key) Known() bool {
	for _, known := range Keys {
		if k == known {
			return true
		}
	}

	return false
}

// Store is a durable key-value store for scalar preferences.
//
// Get reports a missing key with ok == false and a nil error. Storage
// failures are returned unchanged.
type Store interface {
	Get(ctx context.Context, key Key) (value string, ok bool, err error)
	Set(ctx context.Context, key Key, value string) error
}
