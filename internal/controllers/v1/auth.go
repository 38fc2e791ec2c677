package v1

import (
	"net/http"

	"github.com/cashfy/backend/internal/auth"
	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Email    string `json:"email" example:"ana@example.com"`
	Name     string `json:"name" example:"Ana"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type LoginInput struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type UserResponse struct {
	Error *string      `json:"error" example:"a user with this email address already exists"` // The error, if any occurred
	Data  *models.User `json:"data"`                                                           // The registered user
}

type LoginResponse struct {
	Error *string     `json:"error" example:"the email address or password is not correct"` // The error, if any occurred
	Data  *auth.Token `json:"data"`                                                         // The issued token
}

func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)
	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)
}

// @Summary		Register
// @Description	Creates a new user
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		409		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterInput	true	"User"
// @Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var input RegisterInput
	err := httputil.BindData(c, &input)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	user, err := co.Auth.Register(c.Request.Context(), input.Email, input.Name, input.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: &user})
}

// @Summary		Login
// @Description	Returns a token for the credentials
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		LoginInput	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var input LoginInput
	err := httputil.BindData(c, &input)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	token, err := co.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Data: &token})
}
