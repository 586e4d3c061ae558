package reservation

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusHold           Status = "hold"
	StatusConfirmed      Status = "confirmed"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusHold, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}
