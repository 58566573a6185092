package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agenin-transaction/internal/core/domain"
	"agenin-transaction/internal/core/ports/mocks"
	"agenin-transaction/pkg/apperror"
)

func TestAuditPublisher_LogCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	bridge := mocks.NewMockMessageBridge(ctrl)
	pub := NewAuditPublisher(bridge, "agenin.log", zerolog.Nop())

	actor := domain.Actor{FullName: "Agen Satu", RoleName: domain.RoleAgent}

	var captured []byte
	bridge.EXPECT().
		SendAsync(gomock.Any(), "agenin.log", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload []byte) error {
			captured = payload
			return nil
		})

	err := pub.LogCreate(context.Background(), "transactions", "rec-1", map[string]any{"status": "SUCCESS"}, actor)
	require.NoError(t, err)

	var record domain.AuditRecord
	require.NoError(t, json.Unmarshal(captured, &record))
	assert.Equal(t, "transactions", record.TableName)
	assert.Equal(t, "rec-1", record.RecordID)
	assert.Equal(t, domain.AuditActionCreate, record.Action)
	assert.Equal(t, "Agen Satu", record.Actor.FullName)
	assert.False(t, record.ChangedAt.IsZero())
}

func TestAuditPublisher_LogUpdateCarriesBothStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	bridge := mocks.NewMockMessageBridge(ctrl)
	pub := NewAuditPublisher(bridge, "agenin.log", zerolog.Nop())

	var captured []byte
	bridge.EXPECT().
		SendAsync(gomock.Any(), "agenin.log", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload []byte) error {
			captured = payload
			return nil
		})

	err := pub.LogUpdate(context.Background(), "user_wallets", "w-1",
		map[string]any{"amount": "0"},
		map[string]any{"amount": "5000"},
		domain.Actor{})
	require.NoError(t, err)

	var record domain.AuditRecord
	require.NoError(t, json.Unmarshal(captured, &record))
	assert.Equal(t, domain.AuditActionUpdate, record.Action)
	assert.Equal(t, "0", record.OldData["amount"])
	assert.Equal(t, "5000", record.NewData["amount"])
}

func TestAuditPublisher_SerializationFailureIsHardError(t *testing.T) {
	ctrl := gomock.NewController(t)
	bridge := mocks.NewMockMessageBridge(ctrl)
	pub := NewAuditPublisher(bridge, "agenin.log", zerolog.Nop())

	// Channels are not JSON-serializable. No publish must happen.
	err := pub.LogCreate(context.Background(), "transactions", "rec-1",
		map[string]any{"bad": make(chan int)}, domain.Actor{})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SERIALIZATION", appErr.Code)
}

func TestAuditPublisher_DeliveryFailureIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	bridge := mocks.NewMockMessageBridge(ctrl)
	pub := NewAuditPublisher(bridge, "agenin.log", zerolog.Nop())

	bridge.EXPECT().
		SendAsync(gomock.Any(), "agenin.log", gomock.Any()).
		Return(errors.New("broker unreachable"))

	err := pub.LogCreate(context.Background(), "transactions", "rec-1",
		map[string]any{"status": "SUCCESS"}, domain.Actor{})
	assert.NoError(t, err)
}
