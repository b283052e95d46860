package types

import (
	shared "xiaoyuan-cli/shared"
)

// ClientSession is the locally persisted session snapshot: the opaque token
// plus the last fetched user profile. User may be nil while Token is set
// (profile fetch pending or token awaiting validation); the reverse is never
// persisted.
type ClientSession struct {
	Token string       `json:"token"`
	User  *shared.User `json:"user,omitempty"`
}
