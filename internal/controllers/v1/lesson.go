package v1

import (
	"net/http"

	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/session"
	"github.com/gin-gonic/gin"
)

type LessonListResponse struct {
	Data  []session.LessonStatus `json:"data"`                                                 // All lessons
	Error *string                `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}

type AnswerInput struct {
	QuestionID string `json:"questionId" example:"q1"` // ID of the question
	Option     int    `json:"option" example:"2"`      // Index of the selected option
}

type AnswerResponse struct {
	Data  *session.Answer `json:"data"`                                                     // The outcome
	Error *string         `json:"error" example:"there is no question with this id in the lesson"` // The error, if any occurred
}

type URILessonID struct {
	ID string `uri:"id" binding:"required"` // ID of the lesson
}

func (co Controller) RegisterLessonRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetLessons)
	r.OPTIONS("/:id/answers", httputil.OptionsPost)
	r.POST("/:id/answers", co.AnswerQuestion)
}

// @Summary		Get lessons
// @Description	Returns all lessons and whether the user completed them
// @Tags			Learning
// @Produce		json
// @Success		200	{object}	LessonListResponse
// @Router			/v1/lessons [get]
func (co Controller) GetLessons(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, LessonListResponse{Data: s.Lessons()})
}

// @Summary		Answer question
// @Description	Grades the answer to a quiz question. Correct answers earn 50 learning XP, wrong answers cost 20.
// @Tags			Learning
// @Accept			json
// @Produce		json
// @Success		200		{object}	AnswerResponse
// @Failure		400		{object}	AnswerResponse
// @Failure		404		{object}	AnswerResponse
// @Param			id		path		string		true	"ID of the lesson"
// @Param			answer	body		AnswerInput	true	"Answer"
// @Router			/v1/lessons/{id}/answers [post]
func (co Controller) AnswerQuestion(c *gin.Context) {
	var uri URILessonID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), AnswerResponse{Error: &e})
		return
	}

	var input AnswerInput
	if err := httputil.BindData(c, &input); err != nil {
		e := err.Error()
		c.JSON(status(err), AnswerResponse{Error: &e})
		return
	}

	s, ok := co.session(c)
	if !ok {
		return
	}

	answer, err := s.AnswerQuestion(c.Request.Context(), uri.ID, input.QuestionID, input.Option)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnswerResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AnswerResponse{Data: &answer})
}
