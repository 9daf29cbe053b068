package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageSentEvent is the payload published after a message is stored.
type MessageSentEvent struct {
	RoomID     string `json:"room_id"`
	MessageID  string `json:"message_id"`
	SenderID   int64  `json:"sender_id"`
	ReceiverID int64  `json:"receiver_id"`
	Body       string `json:"message"`
	SentAt     int64  `json:"sent_at"`
}

// Publisher emits chat events to Kafka. Publishing is fire-and-forget: a
// broker failure is logged and never fails the HTTP request that triggered it.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.SugaredLogger
}

// NewPublisher returns nil when no brokers are configured; callers nil-check.
func NewPublisher(brokers []string, topic string, logger *zap.SugaredLogger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
	}
	return &Publisher{writer: writer, logger: logger}
}

func (p *Publisher) MessageSent(roomID, messageID string, senderID, receiverID int64, body string) {
	event := MessageSentEvent{
		RoomID:     roomID,
		MessageID:  messageID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		SentAt:     time.Now().UnixMilli(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Warnw("failed to marshal message event", "error", err)
		return
	}
	msg := kafka.Message{
		Key:   []byte(roomID),
		Value: data,
	}
	if err := p.writer.WriteMessages(context.Background(), msg); err != nil {
		p.logger.Warnw("failed to publish message event", "roomId", roomID, "error", err)
	}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
