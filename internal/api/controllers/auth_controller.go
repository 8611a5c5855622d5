package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"honesttour/internal/models/request_models"
	"honesttour/internal/services"
	"honesttour/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// GoogleSignIn godoc
// @Summary Sign in with Google
// @Description Verify a Google ID token server-side and open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.GoogleSignInRequest true "Google credential"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/google [post]
func (a *AuthController) GoogleSignIn(c *gin.Context) {
	var req request_models.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := a.authService.SignIn(c.Request.Context(), req.Credential)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Signed in successfully")
}

// GetSession godoc
// @Summary Current session
// @Description Return the signed-in user; sessions older than 30 days are purged
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/session [get]
func (a *AuthController) GetSession(c *gin.Context) {
	user, err := a.authService.GetSession(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Session fetched successfully")
}

// Logout godoc
// @Summary Log out
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.authService.Logout(c.Request.Context(), c.GetString("session_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out successfully")
}
