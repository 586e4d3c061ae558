package request

type SettlePaymentRequest struct {
	Outcome        string `json:"outcome" binding:"required,oneof=success failure"`
	ExternalTxnRef string `json:"external_txn_ref" binding:"required,max=128"`
}
