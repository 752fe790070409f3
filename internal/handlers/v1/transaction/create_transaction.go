package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Title  string  `json:"title" required:"true" minLength:"1" doc:"Title of the transaction"`
	Amount float64 `json:"amount" required:"true" minimum:"0" doc:"Non-negative amount magnitude"`
	Type   string  `json:"type" required:"true" enum:"credit,debit" doc:"Transaction type"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	SessionID string `cookie:"sessionId" doc:"Session token, minted when absent"`
	Body      CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
// The body is empty; a Set-Cookie header is present only when a session
// was minted for this request.
type CreateTransactionOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, token uuid.NullUUID, draft service.TransactionDraft) (service.CreateResult, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction under the caller's session, minting a session when none is present.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput builds the draft from the validated body.
// The type enum never reaches storage, only the sign it selects does.
func parseCreateTransactionInput(input *CreateTransactionInput) (uuid.NullUUID, service.TransactionDraft, error) {
	token, err := sessionFromCookie(input.SessionID)
	if err != nil {
		return uuid.NullUUID{}, service.TransactionDraft{}, huma.NewError(http.StatusBadRequest, "invalid sessionId cookie", err)
	}

	magnitude := decimal.NewFromFloat(input.Body.Amount).Round(2)

	var draft service.TransactionDraft
	switch input.Body.Type {
	case "credit":
		draft = service.Credit(input.Body.Title, magnitude)
	case "debit":
		draft = service.Debit(input.Body.Title, magnitude)
	}
	return token, draft, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	token, draft, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	result, err := h.TransactionService.CreateTransaction(ctx, token, draft)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", result.ID.String())
		logData.AddData("sessionMinted", result.SessionMinted)
	}

	out := &CreateTransactionOutput{}
	if result.SessionMinted {
		out.SetCookie = []http.Cookie{{
			Name:   sessionCookieName,
			Value:  result.SessionID.String(),
			Path:   "/",
			MaxAge: sessionCookieMaxAge,
		}}
	}
	return out, nil
}
