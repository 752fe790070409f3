package session

import (
	"errors"

	"github.com/gofrs/uuid/v5"
)

// ErrNoSession is returned by Require when the caller carries no session token.
var ErrNoSession = errors.New("session: token required")

// Provider issues and recognizes opaque session tokens. Tokens are random
// 128-bit UUIDs and carry no server-side state: a session exists the moment a
// transaction bears its id.
type Provider struct{}

func NewProvider() Provider {
	return Provider{}
}

// Resolve returns the incoming token unchanged when present, otherwise mints a
// fresh one. The minted flag tells the transport layer whether a cookie needs
// to be set on the response.
func (Provider) Resolve(incoming uuid.NullUUID) (token uuid.UUID, minted bool, err error) {
	if incoming.Valid {
		return incoming.UUID, false, nil
	}

	token, err = uuid.NewV4()
	if err != nil {
		return uuid.Nil, false, err
	}
	return token, true, nil
}

// Require returns the incoming token or ErrNoSession. Read operations never
// mint a session, only Resolve does.
func (Provider) Require(incoming uuid.NullUUID) (uuid.UUID, error) {
	if !incoming.Valid {
		return uuid.Nil, ErrNoSession
	}
	return incoming.UUID, nil
}
