package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Title     string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// TransactionDraft is the input for creating a transaction. The amount is
// already signed; use Credit or Debit to build one so callers never assemble
// a signed value by hand.
type TransactionDraft struct {
	Title  string
	Amount decimal.Decimal
}

// Credit builds a draft whose stored amount is the positive magnitude.
func Credit(title string, magnitude decimal.Decimal) TransactionDraft {
	return TransactionDraft{Title: title, Amount: magnitude}
}

// Debit builds a draft whose stored amount is the negated magnitude. The
// original type is not persisted anywhere else, the sign is the encoding.
func Debit(title string, magnitude decimal.Decimal) TransactionDraft {
	return TransactionDraft{Title: title, Amount: magnitude.Neg()}
}

// CreateResult reports the stored transaction id and the session it was
// filed under. SessionMinted tells the transport layer whether a session
// cookie must be set on the response.
type CreateResult struct {
	ID            uuid.UUID
	SessionID     uuid.UUID
	SessionMinted bool
}
