package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/duetalk/chat-backend/internal/apperr"
	"github.com/duetalk/chat-backend/internal/models"
	"github.com/duetalk/chat-backend/internal/repository"
)

// RoomSummary is the per-room view returned by the chat list: the stored
// summary fields plus the id of the other party from the caller's point of
// view. OtherUserID is null when the stored participants array is malformed.
type RoomSummary struct {
	RoomID       string  `json:"roomId"`
	Participants []int64 `json:"participants"`
	LastMessage  string  `json:"lastMessage"`
	LastSenderID int64   `json:"lastSenderId"`
	UpdatedAt    int64   `json:"updatedAt"`
	OtherUserID  *int64  `json:"otherUserId"`
}

// EnrichedMessage is the all-chat view of a message: raw sender/receiver ids
// and the audit timestamp are dropped, display names are resolved, and the
// room id comes from the message's parent-room reference.
type EnrichedMessage struct {
	RoomID       string  `json:"roomId"`
	Participants []int64 `json:"participants"`
	Body         string  `json:"message"`
	Timestamp    int64   `json:"timestamp"`
	SenderName   string  `json:"senderName"`
	ReceiverName string  `json:"receiverName"`
}

type ChatService struct {
	chats  repository.ChatRepository
	users  repository.UserRepository
	logger *zap.SugaredLogger
}

func NewChatService(chats repository.ChatRepository, users repository.UserRepository, logger *zap.SugaredLogger) *ChatService {
	return &ChatService{chats: chats, users: users, logger: logger}
}

// SendMessage appends an immutable message and merge-upserts the room summary
// for the sender/receiver pair. The two writes are independent: when the
// summary write fails after a successful append, the message is durable but
// the summary is stale. That window is logged and surfaced, never rolled back.
func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID int64, body string) (roomID, messageID string, err error) {
	roomID, err = DeriveRoomID(senderID, receiverID)
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	participants := []int64{senderID, receiverID}

	msg := &models.Message{
		RoomID:       roomID,
		Participants: participants,
		SenderID:     senderID,
		ReceiverID:   receiverID,
		Body:         body,
		Timestamp:    now.UnixMilli(),
		UpdatedAt:    now.UTC(),
	}
	messageID, err = s.chats.AppendMessage(ctx, msg)
	if err != nil {
		return "", "", apperr.Wrap(apperr.Store, "failed to store message", err)
	}

	room := &models.Room{
		ID:           roomID,
		Participants: participants,
		LastMessage:  body,
		LastSenderID: senderID,
		UpdatedAt:    now.UnixMilli(),
	}
	if err := s.chats.UpsertRoomSummary(ctx, room); err != nil {
		s.logger.Errorw("room summary update failed after message append; summary is stale",
			"roomId", roomID, "messageId", messageID, "error", err)
		return "", "", apperr.Wrap(apperr.Store, "failed to update room summary", err)
	}

	return roomID, messageID, nil
}

// RoomsForUser lists the summaries of every room the user participates in.
func (s *ChatService) RoomsForUser(ctx context.Context, userID int64) ([]RoomSummary, error) {
	if userID == 0 {
		return nil, apperr.New(apperr.Validation, "user_id is required")
	}

	rooms, err := s.chats.RoomsForUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "failed to list rooms", err)
	}

	summaries := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		summary := RoomSummary{
			RoomID:       room.ID,
			Participants: room.Participants,
			LastMessage:  room.LastMessage,
			LastSenderID: room.LastSenderID,
			UpdatedAt:    room.UpdatedAt,
			OtherUserID:  otherParticipant(room.Participants, userID),
		}
		if summary.OtherUserID == nil {
			s.logger.Warnw("room has malformed participants", "roomId", room.ID, "participants", room.Participants)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// AllMessages scans every stored message and resolves sender/receiver display
// names. Lookups are deduplicated per request; unknown users resolve to an
// empty name rather than failing the whole listing.
func (s *ChatService) AllMessages(ctx context.Context) ([]EnrichedMessage, error) {
	msgs, err := s.chats.AllMessages(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "failed to list messages", err)
	}

	names := map[int64]string{}
	resolve := func(userID int64) (string, error) {
		if name, ok := names[userID]; ok {
			return name, nil
		}
		u, err := s.users.FindByUserID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			names[userID] = ""
			return "", nil
		}
		if err != nil {
			return "", apperr.Wrap(apperr.Store, "failed to resolve user name", err)
		}
		names[userID] = u.Fullname
		return u.Fullname, nil
	}

	enriched := make([]EnrichedMessage, 0, len(msgs))
	for _, msg := range msgs {
		senderName, err := resolve(msg.SenderID)
		if err != nil {
			return nil, err
		}
		receiverName, err := resolve(msg.ReceiverID)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, EnrichedMessage{
			RoomID:       msg.RoomID,
			Participants: msg.Participants,
			Body:         msg.Body,
			Timestamp:    msg.Timestamp,
			SenderName:   senderName,
			ReceiverName: receiverName,
		})
	}
	return enriched, nil
}

func otherParticipant(participants []int64, userID int64) *int64 {
	if len(participants) != 2 {
		return nil
	}
	for _, p := range participants {
		if p != userID {
			other := p
			return &other
		}
	}
	return nil
}
