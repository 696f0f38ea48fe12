package dto

type DeviceCheckInput struct {
	CustomerID string `json:"customer_id"`
	DeviceID   string `json:"device_id"`
}

type DeviceCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
