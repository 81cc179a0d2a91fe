package entity

// Customer representa a un interesado en reservar una prueba de manejo.
// Vehicle es solo entrada del intake: si la clave VehicleID no existe aún,
// el coordinador lo crea primero; el registro persistido del cliente nunca
// lleva el objeto anidado, solo la clave escalar.
type Customer struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	VehicleID int64    `json:"vehicle_id"`
	Vehicle   *Vehicle `json:"vehicle,omitempty"`
}
