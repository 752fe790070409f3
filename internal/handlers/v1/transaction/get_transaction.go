package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
)

// GetTransactionInput is the Huma input for fetching a single transaction.
type GetTransactionInput struct {
	ID        string `path:"id" format:"uuid" doc:"Transaction UUID"`
	SessionID string `cookie:"sessionId" doc:"Session token"`
}

// GetTransactionResponseBody is the response body for fetching a transaction.
// Transaction is null when the id is not visible in the caller's session.
type GetTransactionResponseBody struct {
	Transaction *Transaction `json:"transaction" doc:"The transaction, or null when not found"`
}

// GetTransactionOutput is the Huma output for fetching a transaction.
type GetTransactionOutput struct {
	Body GetTransactionResponseBody
}

// transactionGetter is the interface for fetching one transaction.
type transactionGetter interface {
	GetTransaction(ctx context.Context, token uuid.NullUUID, id uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{id}",
		Summary:     "Get transaction",
		Description: "Returns one transaction of the caller's session, or null when the id is not visible to it.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	token, err := sessionFromCookie(input.SessionID)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "invalid sessionId cookie", err)
	}

	// Huma's format:"uuid" schema validation rejects malformed ids before
	// the handler runs.
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getTransactionMs")
	}
	tx, err := h.TransactionService.GetTransaction(ctx, token, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, huma.NewError(http.StatusUnauthorized, "session required")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get transaction", err)
	}

	resp := GetTransactionResponseBody{}
	if tx != nil {
		converted := transactionToAPI(*tx)
		resp.Transaction = &converted
	}

	if logData != nil {
		logData.AddData("transactionFound", tx != nil)
	}

	return &GetTransactionOutput{Body: resp}, nil
}
