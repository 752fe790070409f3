package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrConflict reports a primary key collision on insert. With random 128-bit
// ids this is practically unreachable, but it is a defined failure rather
// than a crash so the service can retry with a fresh id.
var ErrConflict = errors.New("transaction: id already exists")

// Transaction represents a transaction row. Rows are immutable after insert;
// there are no update or delete queries. The sign of Amount encodes the
// transaction type: positive for credit, negative for debit.
type Transaction struct {
	ID        uuid.UUID       `db:"id"`
	SessionID uuid.UUID       `db:"session_id"`
	Title     string          `db:"title"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

// TransactionCreate is the input for inserting a new transaction. The id is
// generated by the caller, created_at is defaulted by the database.
type TransactionCreate struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Title     string
	Amount    decimal.Decimal
}

// ITransactionTable defines the interface for transaction storage operations.
// Every query except Insert is scoped by an explicit session id, which is the
// privacy boundary: rows from other sessions are indistinguishable from rows
// that do not exist.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Transaction, error)
	FindByIDAndSession(ctx context.Context, id uuid.UUID, sessionID uuid.UUID) (*Transaction, error)
	SumAmountBySession(ctx context.Context, sessionID uuid.UUID) (decimal.Decimal, error)
}
