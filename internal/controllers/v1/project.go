package v1

import (
	"net/http"

	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ProjectEditable struct {
	Name string `json:"name" example:"Kitchen renovation"` // Name of the project
}

type ProjectListResponse struct {
	Data  []models.Project `json:"data"`                                                          // List of projects
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProjectResponse struct {
	Data  *models.Project `json:"data"`                                       // The project
	Error *string         `json:"error" example:"the project name must not be empty"` // The error, if any occurred
}

func (co Controller) RegisterProjectRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetProjects)
	r.POST("", co.CreateProject)
}

// @Summary		Get projects
// @Description	Returns the projects of the user
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectListResponse
// @Router			/v1/projects [get]
func (co Controller) GetProjects(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	data := s.Projects()
	if data == nil {
		data = []models.Project{}
	}

	c.JSON(http.StatusOK, ProjectListResponse{Data: data})
}

// @Summary		Create project
// @Description	Creates a project
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		201		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		500		{object}	ProjectResponse
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects [post]
func (co Controller) CreateProject(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	var data ProjectEditable
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &e})
		return
	}

	project, err := s.AddProject(c.Request.Context(), models.Project{Name: data.Name})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, ProjectResponse{Data: &project})
}
