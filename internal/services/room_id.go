package services

import (
	"fmt"

	"github.com/duetalk/chat-backend/internal/apperr"
)

// DeriveRoomID maps an unordered pair of user ids to the canonical room key.
// The pair is ordered numerically before joining, so DeriveRoomID(a, b) and
// DeriveRoomID(b, a) always agree, and the output depends on nothing but the
// two ids. Self-chat is rejected: a room has exactly two distinct parties.
func DeriveRoomID(a, b int64) (string, error) {
	if a == 0 || b == 0 {
		return "", apperr.New(apperr.Validation, "both participant ids are required")
	}
	if a == b {
		return "", apperr.New(apperr.Validation, "sender and receiver must be different users")
	}
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b), nil
}
