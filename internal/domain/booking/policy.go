package booking

// RefundOutcome is the result of evaluating a cancellation against the
// tenant's policy. Penalty always reconciles: refund + penalty = amountPaid.
type RefundOutcome struct {
	Refund  Money `json:"refundCents"`
	Penalty Money `json:"penaltyCents"`
}

// EvaluateRefund computes the refund from the hours remaining until check-in
// and the amount actually paid. Pure; unit-testable without persistence.
//
//	flexible:       full refund > 24h, else none
//	moderate:       full refund > 120h, 50% > 24h, else none
//	strict:         50% refund > 168h, else none
//	non_refundable: none
func EvaluateRefund(policy PolicyKind, hoursUntilCheckIn float64, amountPaid Money) RefundOutcome {
	refund := Money{}

	switch policy {
	case PolicyFlexible:
		if hoursUntilCheckIn > 24 {
			refund = amountPaid
		}
	case PolicyModerate:
		switch {
		case hoursUntilCheckIn > 120:
			refund = amountPaid
		case hoursUntilCheckIn > 24:
			refund = amountPaid.MulRate(0.5)
		}
	case PolicyStrict:
		if hoursUntilCheckIn > 168 {
			refund = amountPaid.MulRate(0.5)
		}
	case PolicyNonRefundable:
	}

	return RefundOutcome{
		Refund:  refund,
		Penalty: amountPaid.Sub(refund),
	}
}
