package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrVehicleMissing = errors.New("el vehículo referenciado no existe")

	// ErrEventPublish distingue un fallo de publicación en el broker de un
	// fallo de persistencia: cuando Submit lo retorna, el cliente YA quedó
	// escrito en la base de datos.
	ErrEventPublish = errors.New("fallo al publicar el evento de notificación")
)
