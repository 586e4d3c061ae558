package request

type ValidatePromoRequest struct {
	Code string `json:"code" binding:"required,max=40"`
}
