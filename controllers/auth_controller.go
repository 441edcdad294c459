package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"institute-backend/middleware"
	"institute-backend/models"
	"institute-backend/services"
	"institute-backend/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	username := strings.TrimSpace(payload.Username)
	user, err := ac.Auth.Authenticate(username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	session, err := ac.Auth.CreateSession(user.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create session")
		return
	}

	c.SetCookie(middleware.SessionCookie, session.Token, int(services.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, user)
}

// Logout invalidates whatever session the request carries. Always 200, even
// without a cookie, matching the original site's behavior.
func (ac *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		if err := ac.Auth.DeleteSession(token); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "logout failed")
			return
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// CurrentUser runs behind RequireAdmin, which has already resolved the session.
func (ac *AuthController) CurrentUser(c *gin.Context) {
	user, ok := c.MustGet(middleware.CurrentUserKey).(*models.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}
