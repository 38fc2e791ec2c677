package v1

import (
	"context"
	"net/http"

	"github.com/cashfy/backend/internal/gamification"
	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/session"
	"github.com/gin-gonic/gin"
)

type GamificationResponse struct {
	Data  *session.Gamification `json:"data"`                                            // Badges, XP and level
	Error *string               `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}

type XPInput struct {
	Amount int `json:"amount" example:"50"` // XP to add, negative values deduct
}

type CelebrationResponse struct {
	Data  *gamification.Badge `json:"data"`                                            // The badge to celebrate, null if there is none
	Error *string             `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}

type NotificationListResponse struct {
	Data  []string `json:"data" example:"Goal 'Car' is almost complete (95%)!"`      // Notifications, newest first
	Error *string  `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}

func (co Controller) RegisterGamificationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetGamification)
	r.OPTIONS("/xp", httputil.OptionsPost)
	r.POST("/xp", co.EarnXP)
	r.OPTIONS("/learning-xp", httputil.OptionsPost)
	r.POST("/learning-xp", co.EarnLearningXP)
	r.OPTIONS("/celebration", httputil.OptionsGet)
	r.GET("/celebration", co.GetCelebration)
}

func (co Controller) RegisterNotificationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetNotifications)
}

// @Summary		Get gamification
// @Description	Returns the badges, the XP and the level of the user
// @Tags			Gamification
// @Produce		json
// @Success		200	{object}	GamificationResponse
// @Failure		500	{object}	GamificationResponse
// @Router			/v1/gamification [get]
func (co Controller) GetGamification(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	g := s.Gamification()
	c.JSON(http.StatusOK, GamificationResponse{Data: &g})
}

// @Summary		Earn XP
// @Description	Adds XP to the total. The total never goes below zero.
// @Tags			Gamification
// @Accept			json
// @Produce		json
// @Success		200	{object}	GamificationResponse
// @Failure		400	{object}	GamificationResponse
// @Param			xp	body		XPInput	true	"XP"
// @Router			/v1/gamification/xp [post]
func (co Controller) EarnXP(c *gin.Context) {
	co.earn(c, (*session.Session).EarnXP)
}

// @Summary		Earn learning XP
// @Description	Adds XP to the learning XP and to the total. Both never go below zero.
// @Tags			Gamification
// @Accept			json
// @Produce		json
// @Success		200	{object}	GamificationResponse
// @Failure		400	{object}	GamificationResponse
// @Param			xp	body		XPInput	true	"XP"
// @Router			/v1/gamification/learning-xp [post]
func (co Controller) EarnLearningXP(c *gin.Context) {
	co.earn(c, (*session.Session).EarnLearningXP)
}

func (co Controller) earn(c *gin.Context, apply func(*session.Session, context.Context, int)) {
	var input XPInput
	if err := httputil.BindData(c, &input); err != nil {
		e := err.Error()
		c.JSON(status(err), GamificationResponse{Error: &e})
		return
	}

	s, ok := co.session(c)
	if !ok {
		return
	}

	apply(s, c.Request.Context(), input.Amount)

	g := s.Gamification()
	c.JSON(http.StatusOK, GamificationResponse{Data: &g})
}

// @Summary		Pop celebration
// @Description	Returns the oldest badge that was unlocked but not celebrated yet and removes it from the queue
// @Tags			Gamification
// @Produce		json
// @Success		200	{object}	CelebrationResponse
// @Router			/v1/gamification/celebration [get]
func (co Controller) GetCelebration(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CelebrationResponse{Data: s.PopCelebration()})
}

// @Summary		Get notifications
// @Description	Returns the notifications of the session, newest first
// @Tags			Gamification
// @Produce		json
// @Success		200	{object}	NotificationListResponse
// @Router			/v1/notifications [get]
func (co Controller) GetNotifications(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	data := s.Notifications()
	if data == nil {
		data = []string{}
	}

	c.JSON(http.StatusOK, NotificationListResponse{Data: data})
}
