package posts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Post struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChurchID uuid.UUID `gorm:"column:church_id;type:uuid;not null;index" json:"church_id"`
	AuthorID uuid.UUID `gorm:"column:author_id;type:uuid;not null" json:"author_id"`
	Content  string    `gorm:"not null" json:"content"`
	ImageURL *string   `gorm:"column:image_url" json:"image_url,omitempty"`

	// TargetBranches limits an HQ announcement to specific branch churches.
	// Empty/null means visible to all branches.
	TargetBranches datatypes.JSONSlice[string] `gorm:"column:target_branches" json:"target_branches,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
