// Package events streams executed trades to Kafka. Publishing is
// best-effort: a broker failure is logged and the placement result is
// unaffected.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/models"
)

type Publisher struct {
	w      *kafka.Writer
	logger *zap.Logger
}

func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           200 * time.Millisecond,
	}
	return &Publisher{w: w, logger: logger}
}

// Publish writes one executed trade as JSON, keyed by symbol so a symbol's
// trades stay ordered within a partition.
func (p *Publisher) Publish(ctx context.Context, trade models.Trade) {
	b, err := json.Marshal(trade)
	if err != nil {
		p.logger.Warn("trade marshal failed", zap.Int64("trade_id", trade.TradeID), zap.Error(err))
		return
	}

	msg := kafka.Message{
		Key:   []byte(trade.Symbol),
		Value: b,
		Time:  trade.Timestamp,
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("trade publish failed", zap.Int64("trade_id", trade.TradeID), zap.Error(err))
	}
}

func (p *Publisher) Close() error { return p.w.Close() }
