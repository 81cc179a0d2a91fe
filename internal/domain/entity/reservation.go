package entity

// Reservation es la proyección de un cliente recibido por el broker.
// IsEmailSent evita reenviar el correo de confirmación.
type Reservation struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	VehicleID   int64  `json:"vehicle_id"`
	IsEmailSent bool   `json:"is_email_sent"`
}
