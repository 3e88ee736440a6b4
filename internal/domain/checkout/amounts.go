package checkout

import "fmt"

// ReconcileOptions selects the payment shape the reconciliation applies to.
type ReconcileOptions struct {
	// Express skips strict reconciliation: wallet amounts are computed before
	// tax and re-checked once the final total is known.
	Express bool
	// Partial is the pending processor order a gift-card step settles
	// against; nil for standard single payments.
	Partial *PendingOrder
}

// ReconcileAmounts validates the proposed payment amount against the basket
// before a request is submitted to the processor. All comparisons happen in
// minor units.
func ReconcileAmounts(basket Basket, proposed Amount, opts ReconcileOptions) error {
	if proposed.Currency != basket.CurrencyCode {
		return fmt.Errorf("%w: basket %s, payment %s",
			ErrCurrencyMismatch, basket.CurrencyCode, proposed.Currency)
	}

	if opts.Express {
		// TODO: express amounts are recomputed after taxation; wire the
		// post-tax check into the wallet details callback once the commerce
		// API exposes the taxed total there.
		return nil
	}

	total := basket.ExpectedTotalMinor()
	running := basket.InstrumentsTotalMinor() + proposed.Value

	if opts.Partial != nil {
		// A partial-payment order is pinned to the basket total it was
		// created for. If the basket moved underneath it the whole flow must
		// restart; recomputing here would silently collect the wrong amount.
		if opts.Partial.Amount.Value != total {
			return fmt.Errorf("%w: order total %d, basket total %d",
				ErrBasketChanged, opts.Partial.Amount.Value, total)
		}
		if proposed.Value > opts.Partial.RemainingAmount.Value {
			return fmt.Errorf("%w: proposed %d, remaining %d",
				ErrOverCollection, proposed.Value, opts.Partial.RemainingAmount.Value)
		}
		if running > total {
			return fmt.Errorf("%w: running total %d, basket total %d",
				ErrOverCollection, running, total)
		}
		// Under-collection is allowed; further partial payments follow.
		return nil
	}

	if running != total {
		return fmt.Errorf("%w: instruments+payment %d, basket total %d",
			ErrAmountMismatch, running, total)
	}
	return nil
}
