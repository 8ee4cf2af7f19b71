package notifications

import (
	"context"
	"fmt"
	"time"

	"biletsfera/internal/transactions"
	"biletsfera/pkg/logger"

	"github.com/IBM/sarama"
)

// SaleProducer publishes SaleRecorded messages. It satisfies
// transactions.SalePublisher.
type SaleProducer interface {
	PublishSaleRecorded(ctx context.Context, txn *transactions.Transaction) error
	Close() error
}

type KafkaProducerConfig struct {
	Brokers      []string
	SaleTopic    string
	RetryMax     int
	Timeout      time.Duration
	RequiredAcks sarama.RequiredAcks
}

func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:      []string{"localhost:9092"},
		SaleTopic:    "ticket-sales",
		RetryMax:     3,
		Timeout:      10 * time.Second,
		RequiredAcks: sarama.WaitForAll,
	}
}

type kafkaSaleProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
	log      *logger.Logger
}

func NewKafkaSaleProducer(config *KafkaProducerConfig, log *logger.Logger) (SaleProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	// Per-user ordering depends on the hash partitioner
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Info("kafka sale producer created", "brokers", config.Brokers, "topic", config.SaleTopic)

	return &kafkaSaleProducer{
		producer: producer,
		config:   config,
		log:      log,
	}, nil
}

func (p *kafkaSaleProducer) PublishSaleRecorded(ctx context.Context, txn *transactions.Transaction) error {
	msg := &SaleRecorded{
		TransactionID: txn.ID,
		UserID:        txn.UserID,
		SaleDate:      txn.SaleDate,
		TotalCost:     txn.TotalCost,
		Lines:         make([]SaleRecordedLine, 0, len(txn.Lines)),
		EmittedAt:     time.Now().UTC(),
	}
	for _, l := range txn.Lines {
		msg.Lines = append(msg.Lines, SaleRecordedLine{
			TicketID:         l.TicketID,
			EventID:          l.EventID,
			Count:            l.Count,
			SingleTicketCost: l.SingleTicketCost,
			SeatNumbers:      l.SeatNumbers,
		})
	}

	payload, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal sale record: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.config.SaleTopic,
		Key:   sarama.StringEncoder(msg.PartitionKey()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("transaction_id"), Value: []byte(msg.TransactionID.String())},
			{Key: []byte("user_id"), Value: []byte(msg.UserID.String())},
			{Key: []byte("emitted_at"), Value: []byte(msg.EmittedAt.Format(time.RFC3339))},
		},
		Timestamp: msg.SaleDate,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send sale record to Kafka: %w", err)
	}

	p.log.Info("sale record published",
		"topic", p.config.SaleTopic,
		"partition", partition,
		"offset", offset,
		"transaction_id", msg.TransactionID.String(),
	)
	return nil
}

func (p *kafkaSaleProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// noopSaleProducer is used when Kafka is disabled by configuration.
type noopSaleProducer struct{}

func NewNoopSaleProducer() SaleProducer {
	return noopSaleProducer{}
}

func (noopSaleProducer) PublishSaleRecorded(ctx context.Context, txn *transactions.Transaction) error {
	return nil
}

func (noopSaleProducer) Close() error { return nil }
