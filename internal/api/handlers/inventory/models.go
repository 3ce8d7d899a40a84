package inventory

// RestockRequest тело запроса пополнения
type RestockRequest struct {
	Amount int `json:"amount"`
}
