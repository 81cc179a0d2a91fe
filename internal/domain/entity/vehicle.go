package entity

import "github.com/shopspring/decimal"

// Vehicle representa un vehículo del catálogo de pruebas de manejo.
// La clave la asigna el cliente del API, nunca la base de datos.
type Vehicle struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	ImageURL     string          `json:"image_url,omitempty"`
	Height       int             `json:"height,omitempty"`
	Width        int             `json:"width,omitempty"`
	MaxSpeed     int             `json:"max_speed,omitempty"`
	Price        decimal.Decimal `json:"price,omitempty"`
	Displacement int             `json:"displacement,omitempty"`
}
