package dto

import "github.com/shopspring/decimal"

// CreateVehicleRequest entrada de POST /api/vehicles. El ID lo asigna quien llama.
type CreateVehicleRequest struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	ImageURL     string          `json:"image_url"`
	Height       int             `json:"height"`
	Width        int             `json:"width"`
	MaxSpeed     int             `json:"max_speed"`
	Price        decimal.Decimal `json:"price"`
	Displacement int             `json:"displacement"`
}

// UpdateVehicleRequest entrada de PUT /api/vehicles/:id.
type UpdateVehicleRequest struct {
	Name         string          `json:"name"`
	ImageURL     string          `json:"image_url"`
	Height       int             `json:"height"`
	Width        int             `json:"width"`
	MaxSpeed     int             `json:"max_speed"`
	Price        decimal.Decimal `json:"price"`
	Displacement int             `json:"displacement"`
}

// VehicleResponse representación de un vehículo del catálogo.
type VehicleResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	ImageURL     string          `json:"image_url,omitempty"`
	Height       int             `json:"height,omitempty"`
	Width        int             `json:"width,omitempty"`
	MaxSpeed     int             `json:"max_speed,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Displacement int             `json:"displacement,omitempty"`
}
