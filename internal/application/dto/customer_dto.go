package dto

// VehiclePayload vehículo anidado opcional del intake de clientes.
// Solo se usa para crear el vehículo si la clave no existe; nunca se
// persiste como objeto dentro del cliente.
type VehiclePayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateCustomerRequest entrada de POST /api/customers.
type CreateCustomerRequest struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	VehicleID int64           `json:"vehicle_id"`
	Vehicle   *VehiclePayload `json:"vehicle"`
}

// CustomerResponse representación de un cliente persistido.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	VehicleID int64  `json:"vehicle_id"`
}
