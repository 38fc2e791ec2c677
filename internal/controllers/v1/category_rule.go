package v1

import (
	"net/http"

	"github.com/cashfy/backend/internal/auth"
	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryRuleEditable struct {
	Priority uint   `json:"priority" example:"0" default:"0"`  // Rules with a lower priority are matched first
	Match    string `json:"match" example:"*uber*"`            // Glob pattern matched against the description, ignoring case
	Category string `json:"category" example:"Transport"`      // Category set on matching transactions
}

type CategoryRuleListResponse struct {
	Data  []models.CategoryRule `json:"data"`                                                          // List of category rules
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryRuleResponse struct {
	Data  *models.CategoryRule `json:"data"`                                                          // The category rule
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (co Controller) RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategoryRules)
		r.POST("", co.CreateCategoryRule)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetCategoryRule)
		r.PATCH("/:id", co.UpdateCategoryRule)
		r.DELETE("/:id", co.DeleteCategoryRule)
	}
}

// categoryRule loads the rule from the URI for the authenticated user.
// If it cannot be loaded, the error response is written and ok is false.
func categoryRule(c *gin.Context) (rule models.CategoryRule, ok bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &e})
		return models.CategoryRule{}, false
	}

	err := models.DB.WithContext(c.Request.Context()).
		Where(&models.CategoryRule{UserID: auth.UserID(c)}).
		First(&rule, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &e})
		return models.CategoryRule{}, false
	}

	return rule, true
}

// @Summary		Get category rules
// @Description	Returns the category rules of the user, ordered by priority
// @Tags			Category Rules
// @Produce		json
// @Success		200	{object}	CategoryRuleListResponse
// @Failure		500	{object}	CategoryRuleListResponse
// @Router			/v1/category-rules [get]
func (co Controller) GetCategoryRules(c *gin.Context) {
	rules := []models.CategoryRule{}
	err := models.DB.WithContext(c.Request.Context()).
		Where(&models.CategoryRule{UserID: auth.UserID(c)}).
		Order("priority ASC, match ASC").
		Find(&rules).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{Data: rules})
}

// @Summary		Create category rule
// @Description	Creates a category rule. It is applied to new transactions without a category.
// @Tags			Category Rules
// @Accept			json
// @Produce		json
// @Success		201		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		500		{object}	CategoryRuleResponse
// @Param			rule	body		CategoryRuleEditable	true	"Category rule"
// @Router			/v1/category-rules [post]
func (co Controller) CreateCategoryRule(c *gin.Context) {
	var data CategoryRuleEditable
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &e})
		return
	}

	rule := models.CategoryRule{
		UserID:   auth.UserID(c),
		Priority: data.Priority,
		Match:    data.Match,
		Category: data.Category,
	}

	if err := models.DB.WithContext(c.Request.Context()).Create(&rule).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, CategoryRuleResponse{Data: &rule})
}

// @Summary		Get category rule
// @Description	Returns a specific category rule
// @Tags			Category Rules
// @Produce		json
// @Success		200	{object}	CategoryRuleResponse
// @Failure		400	{object}	CategoryRuleResponse
// @Failure		404	{object}	CategoryRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [get]
func (co Controller) GetCategoryRule(c *gin.Context) {
	rule, ok := categoryRule(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &rule})
}

// @Summary		Update category rule
// @Description	Updates a category rule. Only values to be updated need to be specified.
// @Tags			Category Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		404		{object}	CategoryRuleResponse
// @Failure		500		{object}	CategoryRuleResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		CategoryRuleEditable	true	"Category rule"
// @Router			/v1/category-rules/{id} [patch]
func (co Controller) UpdateCategoryRule(c *gin.Context) {
	rule, ok := categoryRule(c)
	if !ok {
		return
	}

	data := CategoryRuleEditable{
		Priority: rule.Priority,
		Match:    rule.Match,
		Category: rule.Category,
	}
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &e})
		return
	}

	rule.Priority = data.Priority
	rule.Match = data.Match
	rule.Category = data.Category

	err := models.DB.WithContext(c.Request.Context()).
		Model(&rule).
		Select("Priority", "Match", "Category").
		Updates(&rule).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &rule})
}

// @Summary		Delete category rule
// @Description	Deletes a category rule
// @Tags			Category Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [delete]
func (co Controller) DeleteCategoryRule(c *gin.Context) {
	rule, ok := categoryRule(c)
	if !ok {
		return
	}

	if err := models.DB.WithContext(c.Request.Context()).Delete(&rule).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
