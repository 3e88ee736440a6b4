package checkout

import (
	"context"
	"fmt"
)

// Context is the per-request checkout aggregate. It is created once per
// inbound call, passed by reference through the pipeline and mutated in place
// whenever the basket service performs a write, so later steps observe the
// latest basket state. It is never persisted.
type Context struct {
	Site     Site
	Basket   Basket
	Customer Customer
	Baskets  *BasketService
}

// PendingOrder returns the typed pending processor order stored on the
// basket, or nil when the basket carries none.
func (c *Context) PendingOrder() (*PendingOrder, error) {
	raw := c.Basket.CustomAttribute(AttrPendingOrderData)
	if raw == "" {
		return nil, nil
	}
	pending, err := DecodePendingOrder(raw)
	if err != nil {
		return nil, err
	}
	return &pending, nil
}

// ContextPreparer builds checkout contexts at the start of a request.
type ContextPreparer struct {
	baskets   BasketRepo
	customers CustomerRepo
	sites     SiteResolver
}

func NewContextPreparer(baskets BasketRepo, customers CustomerRepo, sites SiteResolver) *ContextPreparer {
	return &ContextPreparer{baskets: baskets, customers: customers, sites: sites}
}

// Prepare fetches the basket and customer, verifies basket ownership and
// binds everything into a fresh Context. Ownership mismatch is an
// authorization failure, never a retryable condition.
func (p *ContextPreparer) Prepare(ctx context.Context, siteID, basketID, customerID string) (*Context, error) {
	site, err := p.sites.Site(siteID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSiteNotFound, siteID)
	}

	basket, err := p.baskets.GetBasket(ctx, basketID)
	if err != nil {
		return nil, fmt.Errorf("fetch basket: %w", err)
	}
	if basket.CustomerID != customerID {
		return nil, fmt.Errorf("%w: basket %s", ErrBasketOwnership, basketID)
	}

	customer, err := p.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("fetch customer: %w", err)
	}

	ckt := &Context{
		Site:     site,
		Basket:   basket,
		Customer: customer,
	}
	ckt.Baskets = NewBasketService(p.baskets, ckt)
	return ckt, nil
}
