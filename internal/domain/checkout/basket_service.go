package checkout

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// Payment-method identifiers the commerce backend expects on a payment
// instrument.
const (
	CardMethodID      = "PROCESSOR_CARD"
	ComponentMethodID = "PROCESSOR_COMPONENT"

	cardMethodType = "scheme"
)

// BasketService is the single point of mutation for a basket within one
// request. Every write goes to the basket repository and the bound Context is
// refreshed from the server's response.
type BasketService struct {
	repo BasketRepo
	ckt  *Context
}

func NewBasketService(repo BasketRepo, ckt *Context) *BasketService {
	return &BasketService{repo: repo, ckt: ckt}
}

// Refresh replaces the context's basket snapshot with the server's current
// state.
func (s *BasketService) Refresh(ctx context.Context) error {
	basket, err := s.repo.GetBasket(ctx, s.ckt.Basket.ID)
	if err != nil {
		return fmt.Errorf("refresh basket: %w", err)
	}
	s.ckt.Basket = basket
	return nil
}

// Update merges the given custom attributes into the basket and refreshes
// the context from the server's response.
func (s *BasketService) Update(ctx context.Context, attrs map[string]string) error {
	basket, err := s.repo.UpdateCustomAttributes(ctx, s.ckt.Basket.ID, attrs)
	if err != nil {
		return fmt.Errorf("update basket attributes: %w", err)
	}
	s.ckt.Basket = basket
	return nil
}

// AddPaymentInstrument reserves the amount on the basket for the given
// payment method. All three arguments are required; the method id is derived
// from whether the method is a card or a non-card processor component. The
// processor-identifying custom fields are written alongside the instrument.
func (s *BasketService) AddPaymentInstrument(ctx context.Context, amount float64, paymentMethod, pspReference string) error {
	if amount == 0 {
		return fmt.Errorf("%w: missing amount", ErrValidation)
	}
	if paymentMethod == "" {
		return fmt.Errorf("%w: missing payment method", ErrValidation)
	}
	if pspReference == "" {
		return fmt.Errorf("%w: missing psp reference", ErrValidation)
	}

	methodID := ComponentMethodID + "_" + paymentMethod
	if paymentMethod == cardMethodType {
		methodID = CardMethodID
	}

	basket, err := s.repo.AddPaymentInstrument(ctx, s.ckt.Basket.ID, NewInstrument{
		Amount:          amount,
		PaymentMethodID: methodID,
		PaymentMethod:   paymentMethod,
		PSPReference:    pspReference,
	})
	if err != nil {
		return fmt.Errorf("add payment instrument: %w", err)
	}
	s.ckt.Basket = basket

	return s.Update(ctx, map[string]string{
		AttrPaymentMethod: paymentMethod,
		AttrPaymentAmount: strconv.FormatFloat(amount, 'f', -1, 64),
		AttrPSPReference:  pspReference,
	})
}

// RemoveAllPaymentInstruments removes every payment instrument one at a
// time, in basket order. The removals MUST stay sequential: the backend
// rejects concurrent writes to the same basket version. No-op when the
// basket has none.
func (s *BasketService) RemoveAllPaymentInstruments(ctx context.Context) error {
	instruments := s.ckt.Basket.PaymentInstruments
	if len(instruments) == 0 {
		return nil
	}

	for _, pi := range instruments {
		basket, err := s.repo.RemovePaymentInstrument(ctx, s.ckt.Basket.ID, pi.ID)
		if err != nil {
			return fmt.Errorf("remove payment instrument %s: %w", pi.ID, err)
		}
		s.ckt.Basket = basket
	}
	return nil
}

// AddShopperData writes the shipping address, billing address and customer
// identity an express wallet reported. The three writes touch disjoint
// basket sub-resources, so they run concurrently; the context is refreshed
// from the shipping-address response.
func (s *BasketService) AddShopperData(ctx context.Context, shipping, billing Address, profile ShopperProfile) error {
	var fromShipping Basket

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		basket, err := s.repo.UpdateShippingAddress(gctx, s.ckt.Basket.ID, shipping)
		if err != nil {
			return fmt.Errorf("update shipping address: %w", err)
		}
		fromShipping = basket
		return nil
	})
	g.Go(func() error {
		if _, err := s.repo.UpdateBillingAddress(gctx, s.ckt.Basket.ID, billing); err != nil {
			return fmt.Errorf("update billing address: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if _, err := s.repo.UpdateCustomer(gctx, s.ckt.Basket.ID, profile); err != nil {
			return fmt.Errorf("update customer: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.ckt.Basket = fromShipping
	return nil
}
