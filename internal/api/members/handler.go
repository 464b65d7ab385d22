package membersapi

import (
	"net/http"
	"strings"

	"churchfeed-app/database"
	"churchfeed-app/internal/domain/churches"
	"churchfeed-app/internal/domain/members"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Join creates a member for a church identified by its join code.
func Join(c *gin.Context) {
	var input struct {
		Name       string `json:"name" binding:"required"`
		Phone      string `json:"phone"`
		Email      string `json:"email" binding:"required,email"`
		ChurchCode string `json:"churchCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code := strings.ToUpper(input.ChurchCode)
	var church churches.Church
	if err := database.DB.Where("church_code = ?", code).First(&church).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid church code"})
		return
	}

	member := members.Member{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		ChurchID: church.ID,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join church"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member": member,
		"church": gin.H{
			"id":   church.ID,
			"name": church.Name,
		},
	})
}

// UpdateDeviceToken stores the member's Expo push token.
func UpdateDeviceToken(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
		return
	}

	var input struct {
		DeviceToken string `json:"deviceToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&members.Member{}).
		Where("id = ?", memberID).
		Update("device_token", input.DeviceToken)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update device token"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device token updated"})
}
