package postsapi

import (
	"fmt"
	"log"
	"net/http"

	"churchfeed-app/database"
	"churchfeed-app/internal/domain/admins"
	"churchfeed-app/internal/domain/churches"
	"churchfeed-app/internal/domain/members"
	"churchfeed-app/internal/domain/posts"
	"churchfeed-app/internal/notify"
	"churchfeed-app/internal/reactions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Handler struct {
	reactions *reactions.Coordinator
	notifier  *notify.Expo
}

func NewHandler(reactionsCoord *reactions.Coordinator, notifier *notify.Expo) *Handler {
	return &Handler{reactions: reactionsCoord, notifier: notifier}
}

// CreatePost publishes an announcement for the admin's church. HQ admins may
// target specific branches; empty targeting reaches all of them.
func (h *Handler) CreatePost(c *gin.Context) {
	var input struct {
		Content        string   `json:"content" binding:"required"`
		ImageURL       *string  `json:"imageUrl"`
		TargetBranches []string `json:"targetBranches"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	var admin admins.Admin
	if err := database.DB.Where("user_id = ?", userID).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No admin profile for this account"})
		return
	}

	post := posts.Post{
		ChurchID:       admin.ChurchID,
		AuthorID:       admin.ID,
		Content:        input.Content,
		ImageURL:       input.ImageURL,
		TargetBranches: datatypes.NewJSONSlice(input.TargetBranches),
	}
	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	go h.notifyMembers(&post)

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// GetFeed returns the announcements visible to a church: its own posts plus
// its HQ's posts that target it (or target nobody in particular). Each row
// carries the reaction summary for the optional viewer.
func (h *Handler) GetFeed(c *gin.Context) {
	churchID, err := uuid.Parse(c.Param("churchID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid church id"})
		return
	}

	viewerID := uuid.Nil
	if v := c.Query("viewer_id"); v != "" {
		if parsed, err := uuid.Parse(v); err == nil {
			viewerID = parsed
		}
	}

	var church churches.Church
	if err := database.DB.Where("id = ?", churchID).First(&church).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Church not found"})
		return
	}

	q := database.DB.Where("church_id = ?", church.ID)
	if church.ParentHqID != nil {
		q = q.Or(
			"church_id = ? AND (target_branches IS NULL OR target_branches = '[]' OR target_branches @> ?)",
			*church.ParentHqID,
			fmt.Sprintf(`["%s"]`, church.ID),
		)
	}

	var rows []posts.Post
	if err := database.DB.Where(q).Order("created_at DESC").Limit(100).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
		return
	}

	type feedItem struct {
		posts.Post
		Reactions []reactions.Summary `json:"reactions"`
	}
	feed := make([]feedItem, 0, len(rows))
	for _, p := range rows {
		summary, err := h.reactions.Summary(c.Request.Context(), p.ID, viewerID)
		if err != nil {
			summary = nil
		}
		feed = append(feed, feedItem{Post: p, Reactions: summary})
	}

	c.JSON(http.StatusOK, gin.H{"posts": feed})
}

// notifyMembers pushes the announcement to the devices of every member who
// should see it: the posting church's members, plus targeted branch members
// when an HQ posts.
func (h *Handler) notifyMembers(post *posts.Post) {
	churchIDs := []uuid.UUID{post.ChurchID}

	var church churches.Church
	if err := database.DB.Where("id = ?", post.ChurchID).First(&church).Error; err == nil && church.IsHq {
		if len(post.TargetBranches) > 0 {
			for _, s := range post.TargetBranches {
				if id, err := uuid.Parse(s); err == nil {
					churchIDs = append(churchIDs, id)
				}
			}
		} else {
			var branches []churches.Church
			if err := database.DB.Where("parent_hq_id = ?", church.ID).Find(&branches).Error; err == nil {
				for _, b := range branches {
					churchIDs = append(churchIDs, b.ID)
				}
			}
		}
	}

	var tokens []string
	if err := database.DB.Model(&members.Member{}).
		Where("church_id IN ? AND device_token IS NOT NULL", churchIDs).
		Pluck("device_token", &tokens).Error; err != nil || len(tokens) == 0 {
		return
	}

	title := church.Name
	if title == "" {
		title = "ChurchFeed"
	}
	body := post.Content
	if len(body) > 120 {
		body = body[:117] + "..."
	}
	if err := h.notifier.Push(tokens, title, body, map[string]string{"postId": post.ID.String()}); err != nil {
		log.Println("⚠️ Push notification failed:", err)
	}
}
