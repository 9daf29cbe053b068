package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/duetalk/chat-backend/internal/models"
)

type ChatRepository interface {
	AppendMessage(ctx context.Context, msg *models.Message) (string, error)
	UpsertRoomSummary(ctx context.Context, room *models.Room) error
	RoomsForUser(ctx context.Context, userID int64) ([]models.Room, error)
	AllMessages(ctx context.Context) ([]models.Message, error)
}

type mongoChatRepo struct {
	rooms    *mongo.Collection
	messages *mongo.Collection
}

func NewMongoChatRepo(db *mongo.Database) ChatRepository {
	repo := &mongoChatRepo{
		rooms:    db.Collection("chats"),
		messages: db.Collection("messages"),
	}
	// participants array index so room listing stays an index scan
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "participants", Value: 1}},
		Options: options.Index().SetName("participants_idx"),
	}
	_, _ = repo.rooms.Indexes().CreateOne(context.Background(), idx)
	return repo
}

// AppendMessage inserts one immutable message document and returns its
// generated id.
func (r *mongoChatRepo) AppendMessage(ctx context.Context, msg *models.Message) (string, error) {
	res, err := r.messages.InsertOne(ctx, msg)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return id.Hex(), nil
}

// UpsertRoomSummary merge-writes the summary document keyed by the derived
// room id: created when absent, and only the given fields overwritten when
// present.
func (r *mongoChatRepo) UpsertRoomSummary(ctx context.Context, room *models.Room) error {
	update := bson.M{"$set": bson.M{
		"participants": room.Participants,
		"lastMessage":  room.LastMessage,
		"lastSenderId": room.LastSenderID,
		"updatedAt":    room.UpdatedAt,
	}}
	_, err := r.rooms.UpdateOne(ctx, bson.M{"_id": room.ID}, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoChatRepo) RoomsForUser(ctx context.Context, userID int64) ([]models.Room, error) {
	filter := bson.M{"participants": userID}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.rooms.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// AllMessages scans every message across all rooms in creation order.
func (r *mongoChatRepo) AllMessages(ctx context.Context) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.messages.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var msgs []models.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
