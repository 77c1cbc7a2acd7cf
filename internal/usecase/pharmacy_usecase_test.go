package usecase

import (
	"context"
	"testing"

	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersStatusFilter(t *testing.T) {
	var gotStatus *entity.PharmacyOrderStatus
	orderRepo := &fakePharmacyOrderRepo{
		FindAllFunc: func(_ context.Context, status *entity.PharmacyOrderStatus) ([]entity.PharmacyOrder, error) {
			gotStatus = status
			return []entity.PharmacyOrder{{ID: 31, Status: entity.PharmacyOrderReady}}, nil
		},
	}
	uc := NewPharmacyUsecase(testLogger(), orderRepo)

	got, err := uc.GetOrders(clientContext(), "ready")
	require.NoError(t, err)
	require.NotNil(t, gotStatus)
	assert.Equal(t, entity.PharmacyOrderReady, *gotStatus)
	assert.Equal(t, 1, got.Total)

	_, err = uc.GetOrders(clientContext(), "shipped")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestGetOrderNotFound(t *testing.T) {
	uc := NewPharmacyUsecase(testLogger(), &fakePharmacyOrderRepo{})

	_, err := uc.GetOrder(clientContext(), 31)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetMyOrders(t *testing.T) {
	orderRepo := &fakePharmacyOrderRepo{
		FindByClientIDFunc: func(_ context.Context, clientID int) ([]entity.PharmacyOrder, error) {
			assert.Equal(t, testClientID, clientID)
			return []entity.PharmacyOrder{{ID: 31, ClientID: clientID}}, nil
		},
	}
	uc := NewPharmacyUsecase(testLogger(), orderRepo)

	got, err := uc.GetMyOrders(clientContext())
	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)

	_, err = uc.GetMyOrders(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUpdateOrderStatus(t *testing.T) {
	stored := &entity.PharmacyOrder{ID: 31, Status: entity.PharmacyOrderPending}
	orderRepo := &fakePharmacyOrderRepo{
		FindByIDFunc: func(_ context.Context, _ int) (*entity.PharmacyOrder, error) {
			return stored, nil
		},
	}
	uc := NewPharmacyUsecase(testLogger(), orderRepo)

	_, err := uc.UpdateStatus(clientContext(), 31, &dto.UpdateOrderStatusRequest{Status: "shipped"})
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
	assert.Zero(t, orderRepo.UpdateCalls)

	got, err := uc.UpdateStatus(clientContext(), 31, &dto.UpdateOrderStatusRequest{Status: "preparing", Notes: "in queue"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.PharmacyOrderPreparing), got.Status)
	assert.Equal(t, "in queue", got.Notes)
	assert.Equal(t, 1, orderRepo.UpdateCalls)
}

func TestUpdateOrderStatusDeliveredIsIdempotent(t *testing.T) {
	stored := &entity.PharmacyOrder{ID: 31, Status: entity.PharmacyOrderReady}
	orderRepo := &fakePharmacyOrderRepo{
		FindByIDFunc: func(_ context.Context, _ int) (*entity.PharmacyOrder, error) {
			return stored, nil
		},
	}
	uc := NewPharmacyUsecase(testLogger(), orderRepo)

	first, err := uc.UpdateStatus(clientContext(), 31, &dto.UpdateOrderStatusRequest{Status: "delivered"})
	require.NoError(t, err)
	require.NotNil(t, first.DeliveredAt)

	second, err := uc.UpdateStatus(clientContext(), 31, &dto.UpdateOrderStatusRequest{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, first.DeliveredAt, second.DeliveredAt, "first delivery timestamp is kept")
}
