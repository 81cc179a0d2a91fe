package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/jhoicas/vehicleto-api/pkg/logger"
)

// EnsureTopic verifica que el topic de clientes exista y lo crea si falta.
// Pensado para entornos locales; en producción los topics se administran
// fuera del servicio.
func EnsureTopic(brokers []string, topic string, log *logger.Logger) error {
	if len(brokers) == 0 || brokers[0] == "" {
		return errors.New("kafka: lista de brokers vacía")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conn, err := kafkago.DialContext(ctx, "tcp", brokers[0])
	if err != nil {
		return fmt.Errorf("kafka: conectar a %s: %w", brokers[0], err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions()
	if err != nil {
		return fmt.Errorf("kafka: leer particiones: %w", err)
	}
	for _, p := range partitions {
		if p.Topic == topic {
			log.Debug().Str("topic", topic).Msg("topic ya existe")
			return nil
		}
	}

	err = conn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     3,
		ReplicationFactor: 1,
	})
	if err != nil && !errors.Is(err, kafkago.TopicAlreadyExists) {
		return fmt.Errorf("kafka: crear topic %s: %w", topic, err)
	}

	log.Info().Str("topic", topic).Msg("topic verificado")
	return nil
}
