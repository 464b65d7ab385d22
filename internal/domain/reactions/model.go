package reactions

import (
	"time"

	"github.com/google/uuid"
)

// Type is one of the fixed reaction kinds a member can leave on a post.
type Type string

const (
	TypeHeart      Type = "heart"
	TypeLike       Type = "like"
	TypePrayer     Type = "prayer"
	TypePraise     Type = "praise"
	TypeHeartHands Type = "heart_hands"
)

func ValidType(t Type) bool {
	switch t {
	case TypeHeart, TypeLike, TypePrayer, TypePraise, TypeHeartHands:
		return true
	}
	return false
}

// Reaction holds a single user's current reaction on a post. The unique
// index on (post_id, user_id) enforces at most one row per pair; changing
// type is an upsert, never a second row.
type Reaction struct {
	ID     uint      `gorm:"primaryKey" json:"-"`
	PostID uuid.UUID `gorm:"column:post_id;type:uuid;not null;uniqueIndex:ux_reactions_post_user,priority:1" json:"post_id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:ux_reactions_post_user,priority:2" json:"user_id"`
	Type   Type      `gorm:"type:varchar(20);not null" json:"type"`

	CreatedAt time.Time `json:"created_at"`
}
