package notifications

import (
	"context"
	"fmt"

	"biletsfera/pkg/logger"

	"github.com/IBM/sarama"
)

// SaleConsumer drains the sale topic and hands each record to a
// handler. The default handler just logs; receipt emails or webhooks
// would plug in here.
type SaleConsumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler func(ctx context.Context, sale *SaleRecorded) error
	log     *logger.Logger
}

func NewSaleConsumer(brokers []string, groupID, topic string, log *logger.Logger,
	handler func(ctx context.Context, sale *SaleRecorded) error) (*SaleConsumer, error) {

	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	c := &SaleConsumer{
		group: group,
		topic: topic,
		log:   log,
	}
	if handler != nil {
		c.handler = handler
	} else {
		c.handler = c.logSale
	}
	return c, nil
}

// Run blocks until ctx is cancelled, rejoining the group after each
// rebalance.
func (c *SaleConsumer) Run(ctx context.Context) error {
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, c); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.log.Error("sale consumer error", "error", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *SaleConsumer) Close() error {
	return c.group.Close()
}

func (c *SaleConsumer) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (c *SaleConsumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (c *SaleConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		sale, err := SaleRecordedFromJSON(message.Value)
		if err != nil {
			c.log.Error("failed to decode sale record", "error", err, "offset", message.Offset)
			session.MarkMessage(message, "")
			continue
		}

		if err := c.handler(session.Context(), sale); err != nil {
			c.log.Error("sale handler failed", "error", err, "transaction_id", sale.TransactionID.String())
			// Mark anyway: the topic is a notification feed, not a ledger
		}
		session.MarkMessage(message, "")
	}
	return nil
}

func (c *SaleConsumer) logSale(ctx context.Context, sale *SaleRecorded) error {
	c.log.Info("sale recorded",
		"transaction_id", sale.TransactionID.String(),
		"user_id", sale.UserID.String(),
		"total_cost", sale.TotalCost.StringFixed(2),
		"lines", len(sale.Lines),
	)
	return nil
}
