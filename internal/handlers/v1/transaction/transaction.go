package transaction

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/service"
)

const (
	sessionCookieName   = "sessionId"
	sessionCookieMaxAge = 7 * 24 * 60 * 60 // seconds
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID        string `json:"id" doc:"Transaction UUID"`
	SessionID string `json:"sessionId" doc:"Session UUID the transaction belongs to"`
	Title     string `json:"title" doc:"Title of the transaction"`
	Amount    string `json:"amount" doc:"Signed decimal amount, negative for debits"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func transactionToAPI(tx service.Transaction) Transaction {
	return Transaction{
		ID:        tx.ID.String(),
		SessionID: tx.SessionID.String(),
		Title:     tx.Title,
		Amount:    tx.Amount.String(),
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
	}
}

// sessionFromCookie converts the raw cookie value into an optional token.
// An absent cookie is a valid "no session" state, a garbled one is not.
func sessionFromCookie(raw string) (uuid.NullUUID, error) {
	if raw == "" {
		return uuid.NullUUID{}, nil
	}

	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}
