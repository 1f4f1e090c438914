package booking

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn,
		StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// HoldsRoom reports whether a booking in this status blocks its room's
// date range for other bookings.
func (s Status) HoldsRoom() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Channel is the attribution tag for a booking. Direct-ish channels carry a
// lower platform-fee rate than agency/corporate ones.
type Channel string

const (
	ChannelDirect    Channel = "direct"
	ChannelWebsite   Channel = "website"
	ChannelWhatsApp  Channel = "whatsapp"
	ChannelPhone     Channel = "phone"
	ChannelAgency    Channel = "agency"
	ChannelCorporate Channel = "corporate"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelDirect, ChannelWebsite, ChannelWhatsApp,
		ChannelPhone, ChannelAgency, ChannelCorporate:
		return true
	default:
		return false
	}
}

func (c Channel) IsDirect() bool {
	switch c {
	case ChannelAgency, ChannelCorporate:
		return false
	default:
		return true
	}
}

type PolicyKind string

const (
	PolicyFlexible      PolicyKind = "flexible"
	PolicyModerate      PolicyKind = "moderate"
	PolicyStrict        PolicyKind = "strict"
	PolicyNonRefundable PolicyKind = "non_refundable"
)

func (p PolicyKind) IsValid() bool {
	switch p {
	case PolicyFlexible, PolicyModerate, PolicyStrict, PolicyNonRefundable:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
	MethodGateway  PaymentMethod = "gateway"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodGateway:
		return true
	default:
		return false
	}
}

type HistoryAction string

const (
	ActionCreated         HistoryAction = "created"
	ActionConfirmed       HistoryAction = "confirmed"
	ActionCheckedIn       HistoryAction = "checked_in"
	ActionCheckedOut      HistoryAction = "checked_out"
	ActionCancelled       HistoryAction = "cancelled"
	ActionPaymentRecorded HistoryAction = "payment_recorded"
	ActionRefundRecorded  HistoryAction = "refund_recorded"
)
