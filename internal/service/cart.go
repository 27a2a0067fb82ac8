package service

import (
	"context"
	"fmt"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/logger"
	"vivaha-backend/internal/repository"
)

type cartService struct {
	cartRepo repository.CartRepository
	catalog  repository.ProductCatalog
}

func NewCartService(cartRepo repository.CartRepository, catalog repository.ProductCatalog) CartService {
	return &cartService{
		cartRepo: cartRepo,
		catalog:  catalog,
	}
}

func (s *cartService) load(ctx context.Context, ref CartRef) (*domain.Cart, error) {
	if ref.UserEmail != "" {
		return s.cartRepo.GetUserCart(ctx, ref.UserEmail)
	}
	return s.cartRepo.GetGuestCart(ctx, ref.GuestID)
}

// persist writes the full cart snapshot back to its document. Every mutation
// goes through here so the stored state never trails the in-memory state.
func (s *cartService) persist(ctx context.Context, ref CartRef, cart *domain.Cart) error {
	if ref.UserEmail != "" {
		return s.cartRepo.SaveUserCart(ctx, ref.UserEmail, cart)
	}
	return s.cartRepo.SaveGuestCart(ctx, ref.GuestID, cart)
}

func (s *cartService) GetCart(ctx context.Context, ref CartRef) (*domain.Cart, error) {
	return s.load(ctx, ref)
}

func (s *cartService) AddItem(ctx context.Context, ref CartRef, productID string, quantity int32, purchaseType domain.PurchaseType, rentalDays int32) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if purchaseType != domain.PurchaseTypeSale && purchaseType != domain.PurchaseTypeRent {
		return nil, fmt.Errorf("unknown purchase type %q", purchaseType)
	}
	if purchaseType == domain.PurchaseTypeRent && rentalDays < 1 {
		return nil, ErrInvalidRentalDays
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, repository.ErrInsufficientStock
	}

	// Rental pricing is baked into the unit price here; the cart itself only
	// ever multiplies unit price by quantity.
	unitPrice := product.Price
	if purchaseType == domain.PurchaseTypeRent {
		if !product.Rentable() {
			return nil, ErrNotRentable
		}
		unitPrice = product.RentalPricePerDay * int64(rentalDays)
	} else {
		rentalDays = 1
	}

	cart, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}

	cart.Add(domain.LineItem{
		ProductID:    product.ID,
		Name:         product.Name,
		UnitPrice:    unitPrice,
		Quantity:     quantity,
		PurchaseType: purchaseType,
		RentalDays:   rentalDays,
	})

	if err := s.persist(ctx, ref, cart); err != nil {
		return nil, err
	}

	logger.Debug("cart item added", "product_id", productID, "purchase_type", purchaseType, "quantity", quantity)
	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, ref CartRef, productID string, purchaseType domain.PurchaseType) (*domain.Cart, error) {
	cart, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !cart.Remove(productID, purchaseType) {
		return nil, repository.ErrProductNotFound
	}
	if err := s.persist(ctx, ref, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, ref CartRef, productID string, purchaseType domain.PurchaseType, quantity int32) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	cart, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !cart.UpdateQuantity(productID, purchaseType, quantity) {
		return nil, repository.ErrProductNotFound
	}
	if err := s.persist(ctx, ref, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) MergeGuestCart(ctx context.Context, guestID, userEmail string) (*domain.Cart, error) {
	guestCart, err := s.cartRepo.GetGuestCart(ctx, guestID)
	if err != nil {
		return nil, err
	}

	userCart, err := s.cartRepo.GetUserCart(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	if len(guestCart.Items) == 0 {
		return userCart, nil
	}

	userCart.Merge(guestCart)

	if err := s.cartRepo.SaveUserCart(ctx, userEmail, userCart); err != nil {
		return nil, err
	}
	// The guest cart drains all-or-nothing once the merged cart is saved.
	if err := s.cartRepo.ClearGuestCart(ctx, guestID); err != nil {
		return nil, err
	}

	logger.Info("guest cart merged", "guest_id", guestID, "user_email", userEmail, "lines", len(userCart.Items))
	return userCart, nil
}
