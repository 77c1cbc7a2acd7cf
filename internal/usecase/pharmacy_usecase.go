package usecase

import (
	"context"
	"errors"

	"vet-appointments-service/internal/converter"
	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/delivery/http/middleware"
	"vet-appointments-service/internal/domain/entity"
	"vet-appointments-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound      = errors.New("pharmacy order not found")
	ErrInvalidOrderStatus = errors.New("invalid pharmacy order status")
)

type PharmacyUsecase interface {
	GetOrders(ctx context.Context, statusFilter string) (*dto.PharmacyOrderListResponse, error)
	GetOrder(ctx context.Context, orderID int) (*dto.PharmacyOrderResponse, error)
	GetMyOrders(ctx context.Context) (*dto.PharmacyOrderListResponse, error)
	UpdateStatus(ctx context.Context, orderID int, req *dto.UpdateOrderStatusRequest) (*dto.PharmacyOrderResponse, error)
}

type pharmacyUsecase struct {
	log       *logrus.Logger
	orderRepo repository.PharmacyOrderRepository
}

func NewPharmacyUsecase(log *logrus.Logger, orderRepo repository.PharmacyOrderRepository) PharmacyUsecase {
	return &pharmacyUsecase{
		log:       log,
		orderRepo: orderRepo,
	}
}

func (u *pharmacyUsecase) GetOrders(ctx context.Context, statusFilter string) (*dto.PharmacyOrderListResponse, error) {
	var status *entity.PharmacyOrderStatus
	if statusFilter != "" {
		s := entity.PharmacyOrderStatus(statusFilter)
		if !s.IsValid() {
			return nil, ErrInvalidOrderStatus
		}
		status = &s
	}

	orders, err := u.orderRepo.FindAll(ctx, status)
	if err != nil {
		u.log.Warnf("Failed to list pharmacy orders: %+v", err)
		return nil, err
	}

	return &dto.PharmacyOrderListResponse{
		Orders: converter.PharmacyOrdersToResponses(orders),
		Total:  len(orders),
	}, nil
}

func (u *pharmacyUsecase) GetOrder(ctx context.Context, orderID int) (*dto.PharmacyOrderResponse, error) {
	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy order %d: %+v", orderID, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return converter.PharmacyOrderToResponse(order), nil
}

func (u *pharmacyUsecase) GetMyOrders(ctx context.Context) (*dto.PharmacyOrderListResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	orders, err := u.orderRepo.FindByClientID(ctx, identity.ID)
	if err != nil {
		u.log.Warnf("Failed to list pharmacy orders for client %d: %+v", identity.ID, err)
		return nil, err
	}

	return &dto.PharmacyOrderListResponse{
		Orders: converter.PharmacyOrdersToResponses(orders),
		Total:  len(orders),
	}, nil
}

// UpdateStatus moves an order through its fulfillment states. The first
// transition into delivered stamps the delivery time; repeating it is
// idempotent.
func (u *pharmacyUsecase) UpdateStatus(ctx context.Context, orderID int, req *dto.UpdateOrderStatusRequest) (*dto.PharmacyOrderResponse, error) {
	status := entity.PharmacyOrderStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidOrderStatus
	}

	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy order %d: %+v", orderID, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	order.ApplyStatus(status, req.Notes)
	if err := u.orderRepo.Update(ctx, order); err != nil {
		u.log.Warnf("Failed to update pharmacy order %d: %+v", orderID, err)
		return nil, err
	}

	u.log.Infof("Pharmacy order updated: id=%d, status=%s", orderID, status)
	return converter.PharmacyOrderToResponse(order), nil
}
