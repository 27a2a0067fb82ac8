package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/logger"
	"vivaha-backend/internal/repository"
)

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	catalog   repository.ProductCatalog
	payments  repository.PaymentProcessor
	noteSvc   NotificationService
	emailSvc  EmailService
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	catalog repository.ProductCatalog,
	payments repository.PaymentProcessor,
	noteSvc NotificationService,
	emailSvc EmailService,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		catalog:   catalog,
		payments:  payments,
		noteSvc:   noteSvc,
		emailSvc:  emailSvc,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, user *domain.User, shippingAddress, pickupPoint string) (*domain.Order, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}

	cart, err := s.cartRepo.GetUserCart(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if cart.HasRentalItems() && pickupPoint == "" {
		return nil, ErrMissingPickupPoint
	}

	// Stock is owned by the catalog collaborator; we only ask it to adjust.
	for _, li := range cart.Items {
		if err := s.catalog.AdjustStock(ctx, li.ProductID, -li.Quantity); err != nil {
			return nil, fmt.Errorf("adjust stock for %s: %w", li.ProductID, err)
		}
	}

	now := time.Now()
	items := make([]domain.LineItem, len(cart.Items))
	copy(items, cart.Items)

	order := &domain.Order{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		UserEmail:       user.Email,
		Items:           items,
		Total:           cart.Total(),
		Status:          domain.OrderStatusPlaced,
		ShippingAddress: shippingAddress,
		PickupPoint:     pickupPoint,
		CreatedOn:       now,
		UpdatedOn:       now,
	}

	// Payment is recorded, never processed here.
	if s.payments != nil {
		outcome, err := s.payments.Process(ctx, order)
		if err != nil {
			logger.Warn("payment processing failed", "order_id", order.ID, "error", err)
		} else {
			order.PaymentOutcome = outcome
		}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.cartRepo.ClearUserCart(ctx, user.Email); err != nil {
		return nil, err
	}

	_, _ = s.noteSvc.Notify(ctx, user.ID,
		fmt.Sprintf("Your order %s has been placed.", order.ID),
		domain.NotificationTypeOrder, order.ID)
	_, _ = s.noteSvc.Notify(ctx, domain.RecipientAll,
		fmt.Sprintf("New order %s placed by %s.", order.ID, user.Email),
		domain.NotificationTypeOrder, order.ID)
	_ = s.emailSvc.SendOrderConfirmation(ctx, user.Email, user.Name, order.ID, order.Total)

	logger.Info("order placed", "order_id", order.ID, "user_id", user.ID, "total", order.Total, "lines", len(order.Items))
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *orderService) ListOrders(ctx context.Context, email string) ([]domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, email)
}

func (s *orderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

func (s *orderService) CancelOrder(ctx context.Context, orderID, reason string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(domain.OrderStatusCancelled) {
		return nil, ErrInvalidTransition
	}

	order.Status = domain.OrderStatusCancelled
	order.CancellationReason = reason
	order.UpdatedOn = time.Now()

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	_, _ = s.noteSvc.Notify(ctx, order.UserID,
		fmt.Sprintf("Your order %s has been cancelled.", order.ID),
		domain.NotificationTypeOrder, order.ID)

	logger.Info("order cancelled", "order_id", orderID, "reason", reason)
	return order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, adminNotes string) (*domain.Order, error) {
	if !domain.IsValidStatus(status) {
		return nil, ErrUnknownStatus
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	order.Status = status
	if adminNotes != "" {
		order.AdminNotes = adminNotes
	}
	order.UpdatedOn = time.Now()

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	_, _ = s.noteSvc.Notify(ctx, order.UserID,
		fmt.Sprintf("Order %s is now %s.", order.ID, status),
		domain.NotificationTypeOrder, order.ID)
	_ = s.emailSvc.SendOrderStatusUpdate(ctx, order.UserEmail, "", order.ID, status)

	logger.Info("order status updated", "order_id", orderID, "status", status)
	return order, nil
}

func (s *orderService) RequestReplacement(ctx context.Context, orderID, reason string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Requests accumulate; the latest entry is the active one.
	order.Replacements = append(order.Replacements, domain.ReplacementRequest{
		Reason:      reason,
		RequestedOn: time.Now(),
	})
	order.UpdatedOn = time.Now()

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	_, _ = s.noteSvc.Notify(ctx, domain.RecipientAll,
		fmt.Sprintf("Replacement requested for order %s.", order.ID),
		domain.NotificationTypeSupport, order.ID)

	return order, nil
}

func (s *orderService) RequestPostSaleSupport(ctx context.Context, orderID, issue string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.SupportRequests = append(order.SupportRequests, domain.SupportRequest{
		Issue:       issue,
		Status:      domain.SupportStatusOpen,
		RequestedOn: time.Now(),
	})
	order.UpdatedOn = time.Now()

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	_, _ = s.noteSvc.Notify(ctx, domain.RecipientAll,
		fmt.Sprintf("Post-sale support requested for order %s.", order.ID),
		domain.NotificationTypeSupport, order.ID)

	return order, nil
}
