package checkout

import (
	"encoding/json"
	"fmt"
)

// Processor-specific basket custom attributes. The backend commerce system
// stores them as opaque strings; everything typed lives on this side of the
// boundary.
const (
	AttrPendingOrderData  = "processorPendingOrderData"
	AttrGiftCardBalance   = "processorGiftCardBalance"
	AttrPaymentMethod     = "processorPaymentMethod"
	AttrPaymentAmount     = "processorPaymentAmount"
	AttrPSPReference      = "processorPSPReference"
	AttrReviewPaymentData = "processorReviewPaymentData"
)

// ProcessorAttributes lists every processor custom attribute a full rollback
// must clear.
var ProcessorAttributes = []string{
	AttrPendingOrderData,
	AttrGiftCardBalance,
	AttrPaymentMethod,
	AttrPaymentAmount,
	AttrPSPReference,
	AttrReviewPaymentData,
}

// PendingOrder is the typed form of the processor order blob persisted on the
// basket between partial-payment steps. It is serialized only at the basket
// repository boundary.
type PendingOrder struct {
	PSPReference    string `json:"pspReference"`
	OrderData       string `json:"orderData"`
	Amount          Amount `json:"amount"`          // basket total when the order was created
	RemainingAmount Amount `json:"remainingAmount"` // zero means the order is final
}

// Encode serializes the pending order for storage in a basket custom
// attribute.
func (p PendingOrder) Encode() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode pending order: %w", err)
	}
	return string(raw), nil
}

// DecodePendingOrder parses a pending-order blob read back from the basket.
func DecodePendingOrder(raw string) (PendingOrder, error) {
	var p PendingOrder
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return PendingOrder{}, fmt.Errorf("decode pending order: %w", err)
	}
	return p, nil
}

// PendingOrderFromProcessor lifts a processor order response into the typed
// pending-order value.
func PendingOrderFromProcessor(order ProcessorOrder) PendingOrder {
	return PendingOrder{
		PSPReference:    order.PSPReference,
		OrderData:       order.OrderData,
		Amount:          order.Amount,
		RemainingAmount: order.RemainingAmount,
	}
}
