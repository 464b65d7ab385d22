package churchesapi

import (
	"net/http"
	"strings"

	"churchfeed-app/database"
	"churchfeed-app/internal/domain/churches"

	"github.com/gin-gonic/gin"
)

// GetChurchByCode resolves a join code. Public: members use it to validate
// a code before joining, so only non-sensitive fields are returned.
func GetChurchByCode(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))
	if !churches.ValidCode(code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed church code"})
		return
	}

	var church churches.Church
	if err := database.DB.Where("church_code = ?", code).First(&church).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid church code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          church.ID,
		"name":        church.Name,
		"church_code": church.ChurchCode,
		"is_hq":       church.IsHq,
	})
}

// GetBranches lists the branch churches of the authenticated admin's HQ.
func GetBranches(c *gin.Context) {
	churchID := c.GetString("church_id")
	if churchID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No church in token"})
		return
	}

	var church churches.Church
	if err := database.DB.Where("id = ?", churchID).First(&church).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Church not found"})
		return
	}
	if !church.IsHq {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only HQ churches have branches"})
		return
	}

	var branches []churches.Church
	if err := database.DB.Where("parent_hq_id = ?", church.ID).Find(&branches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load branches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"branches": branches})
}
