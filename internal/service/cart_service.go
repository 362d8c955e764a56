package service

import (
	"context"
	"fmt"

	"compumart/internal/model"
	"compumart/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Get retrieves the user's cart lines. An empty cart is reported as
// model.ErrCartEmpty, not an empty list; callers translate it to 404.
func (s *cartService) Get(ctx context.Context, userID string) ([]model.CartItem, error) {
	if userID == "" {
		return nil, model.ErrMissingUserID
	}

	items, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if len(items) == 0 {
		s.logger.Debug().Str("user_id", userID).Msg("cart is empty")
		return nil, model.ErrCartEmpty
	}

	return items, nil
}

// Add adds a quantity of a product to the user's cart. The quantity must be
// positive and the product must exist in the catalogue.
func (s *cartService) Add(ctx context.Context, req *model.CartRequest) error {
	if err := s.validateCartRequest(req); err != nil {
		return err
	}

	exists, err := s.productRepo.Exists(ctx, req.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", req.ProductID).Msg("failed to validate product")
		return fmt.Errorf("failed to validate product: %w", err)
	}
	if !exists {
		s.logger.Warn().Int64("product_id", req.ProductID).Msg("product does not exist")
		return model.ErrProductNotFound
	}

	line := model.CartLine{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	if err := s.cartRepo.Add(ctx, line); err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", req.UserID).
			Int64("product_id", req.ProductID).
			Msg("failed to add to cart")
		return fmt.Errorf("failed to add to cart: %w", err)
	}

	s.logger.Info().
		Str("user_id", req.UserID).
		Int64("product_id", req.ProductID).
		Int("quantity", req.Quantity).
		Msg("product added to cart")

	return nil
}

// SetQuantity replaces the quantity of an existing cart line. It never
// creates a new line.
func (s *cartService) SetQuantity(ctx context.Context, req *model.CartRequest) error {
	if err := s.validateCartRequest(req); err != nil {
		return err
	}

	updated, err := s.cartRepo.SetQuantity(ctx, req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", req.UserID).
			Int64("product_id", req.ProductID).
			Msg("failed to set cart quantity")
		return fmt.Errorf("failed to set cart quantity: %w", err)
	}

	if !updated {
		s.logger.Debug().
			Str("user_id", req.UserID).
			Int64("product_id", req.ProductID).
			Msg("cart line not found")
		return model.ErrCartItemNotFound
	}

	return nil
}

// Remove deletes a line from the user's cart.
func (s *cartService) Remove(ctx context.Context, userID string, productID int64) error {
	if userID == "" {
		return model.ErrMissingUserID
	}

	removed, err := s.cartRepo.Remove(ctx, userID, productID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to remove from cart")
		return fmt.Errorf("failed to remove from cart: %w", err)
	}

	if !removed {
		s.logger.Debug().
			Str("user_id", userID).
			Int64("product_id", productID).
			Msg("cart line not found")
		return model.ErrCartItemNotFound
	}

	s.logger.Info().
		Str("user_id", userID).
		Int64("product_id", productID).
		Msg("product removed from cart")

	return nil
}

// validateCartRequest checks the fields shared by Add and SetQuantity.
func (s *cartService) validateCartRequest(req *model.CartRequest) error {
	if req == nil || req.UserID == "" {
		return model.ErrMissingUserID
	}

	if req.Quantity <= 0 {
		s.logger.Warn().
			Str("user_id", req.UserID).
			Int64("product_id", req.ProductID).
			Int("quantity", req.Quantity).
			Msg("invalid quantity")
		return model.ErrInvalidQuantity
	}

	return nil
}
