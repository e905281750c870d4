package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/response"
	"github.com/linskybing/ticketdesk/services"
)

type AuthHandler struct {
	Users *services.UserService
}

// Register godoc
// @Summary Register a new user
// @Accept json
// @Produce json
// @Param user body dto.CreateUserInput true "User credentials"
// @Success 201 {object} response.MessageResponse
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.Users.Register(input); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "user registered"})
}

// Login godoc
// @Summary Log in and receive a JWT
// @Accept json
// @Produce json
// @Success 200 {object} response.TokenResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" form:"username" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, token, err := h.Users.Login(input.Username, input.Password)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      user.UID,
		Username: user.Username,
	})
}
