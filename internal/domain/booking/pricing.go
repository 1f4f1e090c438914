package booking

// AddOn is an extra charge line attached to a booking (airport pickup, extra
// bed, breakfast). Add-ons count toward the subtotal ahead of tax.
type AddOn struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amountCents"`
}

// QuoteInput carries everything the pricing calculator needs. The nightly
// rate arrives already adjusted for weekend and per-room adjustments.
type QuoteInput struct {
	NightlyRateCents  int64
	Nights            int
	AddOns            []AddOn
	DiscountCents     int64
	TaxRate           float64
	ServiceChargeRate float64
	PlatformFeeRate   float64
	Currency          string
}

// Breakdown is the financially-complete price decomposition stored with a
// booking. All amounts are cents; platformFee is the platform's own revenue
// share carved out of grandTotal, not a guest charge.
type Breakdown struct {
	NightlyRate       Money   `json:"nightlyRateCents"`
	Nights            int     `json:"nights"`
	RoomCharges       Money   `json:"roomChargesCents"`
	AddOnTotal        Money   `json:"addOnTotalCents"`
	Discount          Money   `json:"discountCents"`
	Subtotal          Money   `json:"subtotalCents"`
	TaxRate           float64 `json:"taxRate"`
	TaxAmount         Money   `json:"taxAmountCents"`
	ServiceChargeRate float64 `json:"serviceChargeRate"`
	ServiceCharge     Money   `json:"serviceChargeCents"`
	GrandTotal        Money   `json:"grandTotalCents"`
	PlatformFeeRate   float64 `json:"platformFeeRate"`
	PlatformFee       Money   `json:"platformFeeCents"`
	NetRevenue        Money   `json:"netRevenueCents"`
	Currency          string  `json:"currency"`
}

// CalculateQuote is a pure function. Steps apply in a fixed order:
// roomCharges = rate x nights; subtotal = roomCharges + addOns - discount
// (floored at zero); tax and service charge on the subtotal; grandTotal =
// subtotal + tax + serviceCharge; platformFee = grandTotal x feeRate;
// netRevenue = grandTotal - platformFee.
func CalculateQuote(in QuoteInput) Breakdown {
	nightlyRate := NewMoney(in.NightlyRateCents)
	roomCharges := nightlyRate.MulInt(in.Nights)

	addOnTotal := Money{}
	for _, a := range in.AddOns {
		addOnTotal = addOnTotal.Add(NewMoney(a.AmountCents))
	}

	discount := NewMoney(in.DiscountCents)
	subtotal := roomCharges.Add(addOnTotal).Sub(discount).FloorZero()

	taxAmount := subtotal.MulRate(in.TaxRate)
	serviceCharge := subtotal.MulRate(in.ServiceChargeRate)
	grandTotal := subtotal.Add(taxAmount).Add(serviceCharge)

	platformFee := grandTotal.MulRate(in.PlatformFeeRate)
	netRevenue := grandTotal.Sub(platformFee)

	return Breakdown{
		NightlyRate:       nightlyRate,
		Nights:            in.Nights,
		RoomCharges:       roomCharges,
		AddOnTotal:        addOnTotal,
		Discount:          discount,
		Subtotal:          subtotal,
		TaxRate:           in.TaxRate,
		TaxAmount:         taxAmount,
		ServiceChargeRate: in.ServiceChargeRate,
		ServiceCharge:     serviceCharge,
		GrandTotal:        grandTotal,
		PlatformFeeRate:   in.PlatformFeeRate,
		PlatformFee:       platformFee,
		NetRevenue:        netRevenue,
		Currency:          in.Currency,
	}
}
