package checkout

import "encoding/json"

// ResultCode is the processor's verdict on a payment or details submission.
type ResultCode string

const (
	ResultAuthorised       ResultCode = "Authorised"
	ResultReceived         ResultCode = "Received"
	ResultRefused          ResultCode = "Refused"
	ResultError            ResultCode = "Error"
	ResultCancelled        ResultCode = "Cancelled"
	ResultRedirectShopper  ResultCode = "RedirectShopper"
	ResultIdentifyShopper  ResultCode = "IdentifyShopper"
	ResultChallengeShopper ResultCode = "ChallengeShopper"
	ResultPending          ResultCode = "Pending"
	ResultPresentToShopper ResultCode = "PresentToShopper"
)

// ProcessorResponse is the normalized payload the processor returns from
// authorize, details and order calls.
type ProcessorResponse struct {
	ResultCode        ResultCode      `json:"resultCode"`
	RefusalReason     string          `json:"refusalReason,omitempty"`
	MerchantReference string          `json:"merchantReference,omitempty"`
	PSPReference      string          `json:"pspReference,omitempty"`
	PaymentMethod     string          `json:"paymentMethod,omitempty"`
	Action            json.RawMessage `json:"action,omitempty"`
	Order             *ProcessorOrder `json:"order,omitempty"`
}

// ProcessorOrder is the processor-side order attached to partially settled
// (multi-instrument) payments.
type ProcessorOrder struct {
	OrderData       string `json:"orderData"`
	PSPReference    string `json:"pspReference"`
	Amount          Amount `json:"amount"`
	RemainingAmount Amount `json:"remainingAmount"`
}

// OutcomeKind tags the three possible classifications of a processor
// response.
type OutcomeKind string

const (
	OutcomeFinalFailure  OutcomeKind = "final-failure"
	OutcomePendingAction OutcomeKind = "pending-action"
	OutcomeSettled       OutcomeKind = "settled"
)

// Outcome is the classifier's verdict. It is never persisted; it is either
// returned to the caller or drives the orchestrator's next step.
type Outcome struct {
	Kind              OutcomeKind     `json:"-"`
	IsFinal           bool            `json:"isFinal"`
	IsSuccessful      bool            `json:"isSuccessful"`
	MerchantReference string          `json:"merchantReference"`
	RefusalReason     string          `json:"refusalReason,omitempty"`
	Action            json.RawMessage `json:"action,omitempty"`
}

// Classify maps a processor response to exactly one of the three outcome
// shapes. It is a pure function: the same classification serves the
// synchronous payment path, the details continuation and the gift-card order
// path. merchantReference falls back to the caller-supplied reference when
// the processor omits it.
func Classify(resp ProcessorResponse, fallbackReference string) Outcome {
	reference := resp.MerchantReference
	if reference == "" {
		reference = fallbackReference
	}

	switch resp.ResultCode {
	case ResultRefused, ResultError, ResultCancelled:
		return Outcome{
			Kind:              OutcomeFinalFailure,
			IsFinal:           true,
			IsSuccessful:      false,
			MerchantReference: reference,
			RefusalReason:     resp.RefusalReason,
		}

	case ResultRedirectShopper, ResultIdentifyShopper, ResultChallengeShopper,
		ResultPending, ResultPresentToShopper:
		return Outcome{
			Kind:              OutcomePendingAction,
			IsFinal:           false,
			IsSuccessful:      true,
			MerchantReference: reference,
			Action:            resp.Action,
		}

	case ResultAuthorised, ResultReceived:
		return Outcome{
			Kind:              OutcomeSettled,
			IsFinal:           settledIsFinal(resp),
			IsSuccessful:      true,
			MerchantReference: reference,
		}

	default:
		// Unknown result codes settle unsuccessfully rather than hang the
		// checkout in a pending state.
		return Outcome{
			Kind:              OutcomeSettled,
			IsFinal:           settledIsFinal(resp),
			IsSuccessful:      false,
			MerchantReference: reference,
			RefusalReason:     resp.RefusalReason,
		}
	}
}

// settledIsFinal reports whether a settled response closes the payment: a
// partial order with a positive remaining amount keeps the checkout open.
func settledIsFinal(resp ProcessorResponse) bool {
	if resp.Order == nil {
		return true
	}
	return resp.Order.RemainingAmount.Value <= 0
}
