package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/duetalk/chat-backend/internal/models"
	"github.com/duetalk/chat-backend/internal/repository"
)

type fakeUserRepo struct {
	users         []models.User
	createErr     error
	findByIDCalls int
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUserID(_ context.Context, userID int64) (*models.User, error) {
	f.findByIDCalls++
	for i := range f.users {
		if f.users[i].UserID == userID {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	return f.users, nil
}

type fakeChatRepo struct {
	messages  []models.Message
	rooms     map[string]models.Room
	appendErr error
	upsertErr error
	listErr   error
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{rooms: map[string]models.Room{}}
}

func (f *fakeChatRepo) AppendMessage(_ context.Context, msg *models.Message) (string, error) {
	if f.appendErr != nil {
		return "", f.appendErr
	}
	msg.ID = primitive.NewObjectID()
	f.messages = append(f.messages, *msg)
	return msg.ID.Hex(), nil
}

func (f *fakeChatRepo) UpsertRoomSummary(_ context.Context, room *models.Room) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.rooms[room.ID] = *room
	return nil
}

func (f *fakeChatRepo) RoomsForUser(_ context.Context, userID int64) ([]models.Room, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Room
	for _, room := range f.rooms {
		for _, p := range room.Participants {
			if p == userID {
				out = append(out, room)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeChatRepo) AllMessages(_ context.Context) ([]models.Message, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.messages, nil
}
