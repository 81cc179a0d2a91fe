package dto

// ReservationResponse representación de una reserva de prueba de manejo.
type ReservationResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	VehicleID   int64  `json:"vehicle_id"`
	IsEmailSent bool   `json:"is_email_sent"`
}
