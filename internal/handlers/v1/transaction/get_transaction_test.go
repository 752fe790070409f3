package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
)

type mockTransactionGetter struct {
	mock.Mock
}

func (m *mockTransactionGetter) GetTransaction(ctx context.Context, token uuid.NullUUID, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, token, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func newGetTestAPI(t *testing.T, svc transactionGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_GetTransaction_Found(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, uuid.NullUUID{UUID: sessionID, Valid: true}, txID).
		Return(&service.Transaction{
			ID:        txID,
			SessionID: sessionID,
			Title:     "Coffee",
			Amount:    decimal.RequireFromString("-4.50"),
			CreatedAt: now,
		}, nil)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transactions/"+txID.String(),
		"Cookie: sessionId="+sessionID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	if assert.NotNil(t, body.Transaction) {
		assert.Equal(t, txID.String(), body.Transaction.ID)
		assert.Equal(t, "Coffee", body.Transaction.Title)
		assert.Equal(t, "-4.5", body.Transaction.Amount)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_Miss_ReturnsNull(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, mock.Anything, txID).Return(nil, nil)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transactions/"+txID.String(),
		"Cookie: sessionId="+sessionID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Transaction)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_MalformedID(t *testing.T) {
	mockSvc := new(mockTransactionGetter)

	// Huma's format:"uuid" schema validation rejects this before the handler runs.
	resp := newGetTestAPI(t, mockSvc).Get("/v1/transactions/not-a-uuid",
		"Cookie: sessionId="+uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetTransaction")
}

func TestHTTP_GetTransaction_NoCookie_Unauthorized(t *testing.T) {
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, uuid.NullUUID{}, txID).
		Return(nil, session.ErrNoSession)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transactions/" + txID.String())

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertExpectations(t)
}
