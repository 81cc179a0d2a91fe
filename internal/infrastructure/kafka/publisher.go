package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/jhoicas/vehicleto-api/internal/application/intake"
	"github.com/jhoicas/vehicleto-api/pkg/logger"
)

var _ intake.EventPublisher = (*Publisher)(nil)

// Publisher publica eventos de cliente registrado en Kafka.
// El payload le llega opaco desde el coordinador de intake: un WriteMessages
// por llamada, sin batching ni reintentos. El Writer es seguro para uso
// concurrente, así que el adaptador no necesita sincronización propia.
type Publisher struct {
	writer *kafkago.Writer
	log    *logger.Logger
}

// NewPublisher construye el productor apuntando al topic de clientes.
func NewPublisher(brokers []string, topic string, log *logger.Logger) *Publisher {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
		BatchSize:    1, // un evento por request de intake, sin acumular
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
	}
	return &Publisher{writer: writer, log: log}
}

// Publish envía el payload al topic. El header message_id permite a los
// consumidores deduplicar si el mismo evento llega más de una vez.
func (p *Publisher) Publish(ctx context.Context, payload []byte) error {
	msg := kafkago.Message{
		Value: payload,
		Time:  time.Now(),
		Headers: []kafkago.Header{
			{Key: "message_id", Value: []byte(uuid.NewString())},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error().Err(err).Str("topic", p.writer.Topic).Msg("publicar evento en Kafka")
		return fmt.Errorf("kafka: escribir mensaje: %w", err)
	}

	p.log.Debug().Str("topic", p.writer.Topic).Int("bytes", len(payload)).Msg("evento publicado")
	return nil
}

// Close cierra el Writer. Llamar al apagar la aplicación.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
