package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Room is the mutable summary of a two-party conversation. The document id is
// the derived room id, so every message between the same pair lands on the
// same summary. Field names follow the persisted layout.
type Room struct {
	ID           string  `bson:"_id" json:"roomId"`
	Participants []int64 `bson:"participants" json:"participants"`
	LastMessage  string  `bson:"lastMessage" json:"lastMessage"`
	LastSenderID int64   `bson:"lastSenderId" json:"lastSenderId"`
	UpdatedAt    int64   `bson:"updatedAt" json:"updatedAt"`
}

// Message is an immutable chat record. Timestamp is the epoch-millis value
// assigned when the request was handled; UpdatedAt is the write-side wall
// clock kept for auditing and never returned to clients.
type Message struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RoomID       string             `bson:"room_id" json:"roomId"`
	Participants []int64            `bson:"participants" json:"participants"`
	SenderID     int64              `bson:"sender_id" json:"sender_id"`
	ReceiverID   int64              `bson:"receiver_id" json:"receiver_id"`
	Body         string             `bson:"message" json:"message"`
	Timestamp    int64              `bson:"timestamp" json:"timestamp"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"-"`
}
