package response

type SettlePaymentResponse struct {
	AlreadySettled bool   `json:"already_settled"`
	Status         string `json:"status"`
}

type SweepHoldsResponse struct {
	Cancelled int64 `json:"cancelled"`
}
