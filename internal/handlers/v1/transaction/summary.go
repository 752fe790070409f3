package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/session"
)

// SummaryInput is the Huma input for the session summary.
type SummaryInput struct {
	SessionID string `cookie:"sessionId" doc:"Session token"`
}

// Summary carries the signed net total of a session. Positive is a
// net-credit position, negative a net-debit one.
type Summary struct {
	Amount string `json:"amount" doc:"Signed decimal net total"`
}

// SummaryResponseBody is the response body for the session summary.
type SummaryResponseBody struct {
	Summary Summary `json:"summary" doc:"Net total over the caller's session"`
}

// SummaryOutput is the Huma output for the session summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// transactionSummarizer is the interface for computing the session total.
type transactionSummarizer interface {
	SummarizeTransactions(ctx context.Context, token uuid.NullUUID) (decimal.Decimal, error)
}

// SummaryHandler handles GET /v1/transactions/summary.
type SummaryHandler struct {
	TransactionService transactionSummarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc transactionSummarizer) *SummaryHandler {
	return &SummaryHandler{TransactionService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "summarize-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/summary",
		Summary:     "Summarize transactions",
		Description: "Returns the signed net total over the caller's session.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	token, err := sessionFromCookie(input.SessionID)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "invalid sessionId cookie", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summarizeTransactionsMs")
	}
	total, err := h.TransactionService.SummarizeTransactions(ctx, token)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, huma.NewError(http.StatusUnauthorized, "session required")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize transactions", err)
	}

	if logData != nil {
		logData.AddData("summaryAmount", total.String())
	}

	return &SummaryOutput{
		Body: SummaryResponseBody{
			Summary: Summary{Amount: total.String()},
		},
	}, nil
}
