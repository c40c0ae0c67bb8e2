package dto

type BookingListDTO struct {
	ID           uint     `json:"id"`
	Date         string   `json:"date"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Status       string   `json:"status"`
	CustomerName string   `json:"customer_name"`
	Services     []string `json:"services"`
	TotalAmount  float64  `json:"total_amount"`
}
