package intake

import "context"

// EventPublisher abstrae la publicación de un evento en el broker.
// El payload es opaco para el adaptador: un envío por llamada, sin
// batching ni reintentos internos.
type EventPublisher interface {
	Publish(ctx context.Context, payload []byte) error
}
