package v1

import (
	"time"

	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/types"
	param_uuid "github.com/cashfy/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID param_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month string `form:"month" example:"2024-07"` // Year and month in YYYY-MM format
}

// month returns the month of the query. It defaults to the month of now.
func (q QueryMonth) month(now time.Time) (types.Month, error) {
	if q.Month == "" {
		return types.MonthOf(now), nil
	}

	return types.ParseMonth(q.Month)
}

// baseURL returns the external URL of the API set by the router.
func baseURL(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL))
}
