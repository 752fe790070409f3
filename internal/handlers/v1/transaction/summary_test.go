package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/session"
)

type mockTransactionSummarizer struct {
	mock.Mock
}

func (m *mockTransactionSummarizer) SummarizeTransactions(ctx context.Context, token uuid.NullUUID) (decimal.Decimal, error) {
	args := m.Called(ctx, token)
	total, _ := args.Get(0).(decimal.Decimal)
	return total, args.Error(1)
}

func newSummaryTestAPI(t *testing.T, svc transactionSummarizer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSummaryHandler(svc).Register(api)
	return api
}

func TestHTTP_Summary_NetTotal(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionSummarizer)
	mockSvc.On("SummarizeTransactions", mock.Anything, uuid.NullUUID{UUID: sessionID, Valid: true}).
		Return(decimal.RequireFromString("3800.00"), nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/transactions/summary",
		"Cookie: sessionId="+sessionID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "3800", body.Summary.Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Summary_NetDebit(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionSummarizer)
	mockSvc.On("SummarizeTransactions", mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("-1200.00"), nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/transactions/summary",
		"Cookie: sessionId="+sessionID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "-1200", body.Summary.Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Summary_EmptySessionIsZero(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionSummarizer)
	mockSvc.On("SummarizeTransactions", mock.Anything, mock.Anything).
		Return(decimal.Zero, nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/transactions/summary",
		"Cookie: sessionId="+sessionID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0", body.Summary.Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Summary_NoCookie_Unauthorized(t *testing.T) {
	mockSvc := new(mockTransactionSummarizer)
	mockSvc.On("SummarizeTransactions", mock.Anything, uuid.NullUUID{}).
		Return(decimal.Zero, session.ErrNoSession)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/transactions/summary")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Summary_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionSummarizer)
	mockSvc.On("SummarizeTransactions", mock.Anything, mock.Anything).
		Return(decimal.Zero, errors.New("database unavailable"))

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/transactions/summary",
		"Cookie: sessionId="+uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
