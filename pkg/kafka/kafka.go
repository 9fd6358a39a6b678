package kafka

import (
	"github.com/IBM/sarama"
	"go.uber.org/zap"

	cb "github.com/sociopath-little-dragon/library-bd/pkg/circuit_breaker"
	"github.com/sociopath-little-dragon/library-bd/pkg/serializer"
)

const (
	LoanTopic = "library.loans"
)

type Config struct {
	Addrs          []string  `envconfig:"KAFKA_ADDRS"`
	CircuitBreaker cb.Config `json:"circuitBreaker"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type Enqueuer interface {
	Enqueue(topic, key string, v any) error
	Close() error
}

func NewEnqueuer(producer sarama.SyncProducer, breaker cb.CircuitBreaker, log *zap.Logger) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		breaker:  breaker,
		log:      log.Named("kafka"),
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	breaker  cb.CircuitBreaker
	log      *zap.Logger
}

func (q *enqueuerImpl) Enqueue(topic, key string, v any) error {
	data, err := serializer.JSON.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	return q.breaker.Call(func() error {
		partition, offset, err := q.producer.SendMessage(msg)
		if err != nil {
			return err
		}
		q.log.Debug("message sent", zap.String("topic", topic), zap.Int32("partition", partition), zap.Int64("offset", offset))
		return nil
	})
}

func (q *enqueuerImpl) Close() error {
	return q.producer.Close()
}

// NewNoopEnqueuer drops every message; used when no brokers are configured.
func NewNoopEnqueuer() Enqueuer {
	return noopEnqueuer{}
}

type noopEnqueuer struct{}

func (noopEnqueuer) Enqueue(string, string, any) error { return nil }
func (noopEnqueuer) Close() error                      { return nil }
