package kafka

import (
	"context"
	"errors"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/jhoicas/vehicleto-api/internal/application/reservation"
	"github.com/jhoicas/vehicleto-api/internal/domain"
	"github.com/jhoicas/vehicleto-api/pkg/logger"
)

// Consumer lee eventos de cliente registrado y los proyecta como reservas.
type Consumer struct {
	reader *kafkago.Reader
	uc     *reservation.UseCase
	log    *logger.Logger
}

// NewConsumer construye el consumidor con group id propio, para que varias
// instancias del servicio se repartan las particiones.
func NewConsumer(brokers []string, topic, groupID string, uc *reservation.UseCase, log *logger.Logger) *Consumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Consumer{reader: reader, uc: uc, log: log}
}

// Run consume mensajes hasta que el contexto se cancele. Un evento repetido
// (ErrDuplicate) se descarta; cualquier otro error se loguea y se sigue con
// el próximo mensaje, el offset ya quedó confirmado por ReadMessage.
func (c *Consumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			c.log.Error().Err(err).Msg("leer mensaje de Kafka")
			return
		}

		if err := c.uc.RegisterFromEvent(ctx, msg.Value); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				c.log.Warn().Int64("offset", msg.Offset).Msg("evento repetido, reserva ya existe")
				continue
			}
			c.log.Error().Err(err).Int64("offset", msg.Offset).Msg("proyectar reserva desde evento")
		}
	}
}

// Close cierra el Reader. Llamar al apagar la aplicación.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
