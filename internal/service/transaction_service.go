package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/session"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// TransactionService handles transaction business logic. Every operation
// takes the caller's session token explicitly; there is no ambient request
// state inside the service.
type TransactionService struct {
	storage  *storage.Storage
	sessions session.Provider
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{
		storage:  store,
		sessions: session.NewProvider(),
	}
}

// CreateTransaction persists a draft under the caller's session, minting a
// session when none is provided. An id collision is retried once with a
// freshly generated id before the failure surfaces.
func (s *TransactionService) CreateTransaction(ctx context.Context, token uuid.NullUUID, draft TransactionDraft) (CreateResult, error) {
	sessionID, minted, err := s.sessions.Resolve(token)
	if err != nil {
		return CreateResult{}, fmt.Errorf("resolve session: %w", err)
	}

	id, err := s.insertWithRetry(ctx, sessionID, draft)
	if err != nil {
		return CreateResult{}, err
	}

	return CreateResult{
		ID:            id,
		SessionID:     sessionID,
		SessionMinted: minted,
	}, nil
}

func (s *TransactionService) insertWithRetry(ctx context.Context, sessionID uuid.UUID, draft TransactionDraft) (uuid.UUID, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		id, err := uuid.NewV4()
		if err != nil {
			return uuid.Nil, fmt.Errorf("generate transaction id: %w", err)
		}

		lastErr = s.storage.Transactions.Insert(ctx, &transaction.TransactionCreate{
			ID:        id,
			SessionID: sessionID,
			Title:     draft.Title,
			Amount:    draft.Amount,
		})
		if lastErr == nil {
			return id, nil
		}
		if !errors.Is(lastErr, transaction.ErrConflict) {
			return uuid.Nil, lastErr
		}
	}
	return uuid.Nil, lastErr
}

// ListTransactions returns every transaction belonging to the caller's
// session. Fails with session.ErrNoSession when no token is provided; reads
// never mint a session.
func (s *TransactionService) ListTransactions(ctx context.Context, token uuid.NullUUID) ([]Transaction, error) {
	sessionID, err := s.sessions.Require(token)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted, nil
}

// GetTransaction returns the transaction with the given id if it belongs to
// the caller's session, and nil on a miss. Ids from other sessions look the
// same as ids that do not exist.
func (s *TransactionService) GetTransaction(ctx context.Context, token uuid.NullUUID, id uuid.UUID) (*Transaction, error) {
	sessionID, err := s.sessions.Require(token)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Transactions.FindByIDAndSession(ctx, id, sessionID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	converted := transactionFromStorage(row)
	return &converted, nil
}

// SummarizeTransactions returns the signed net total for the caller's
// session, exact zero when the session has no transactions.
func (s *TransactionService) SummarizeTransactions(ctx context.Context, token uuid.NullUUID) (decimal.Decimal, error) {
	sessionID, err := s.sessions.Require(token)
	if err != nil {
		return decimal.Zero, err
	}

	return s.storage.Transactions.SumAmountBySession(ctx, sessionID)
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:        row.ID,
		SessionID: row.SessionID,
		Title:     row.Title,
		Amount:    row.Amount,
		CreatedAt: row.CreatedAt,
	}
}
