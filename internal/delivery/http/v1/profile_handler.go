package v1

import (
	"net/http"

	"careerhub-backend/internal/domain"
	"careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	{
		profile.POST("/complete", handler.Complete)
		profile.GET("/me", handler.Me)
	}
}

// Complete godoc
// @Summary      Complete the role-specific profile
// @Description  Upserts the seeker or recruiter profile for the authenticated account. The whole document is replaced on every call.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ProfileInput  true  "Role-specific profile fields"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /profile/complete [post]
// @Security     BearerAuth
func (h *ProfileHandler) Complete(c *gin.Context) {
	var in domain.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.profileUC.Complete(c.Request.Context(), userID, in)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile completed successfully",
		"profile": profile,
	})
}

// Me godoc
// @Summary      Get my account and profile
// @Description  Returns the public account projection plus the role-specific profile document, or null if none exists yet.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.MyProfile
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /profile/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	result, err := h.profileUC.GetMine(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
