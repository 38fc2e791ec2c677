package v1

import (
	"fmt"
	"time"

	"github.com/cashfy/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name          string          `json:"name" example:"New car"`                   // Name of the goal
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"30000"`             // The amount to save
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"1200" default:"0"` // The amount already saved
	Deadline      *time.Time      `json:"deadline" example:"2025-12-31T00:00:00Z"`  // Optional deadline
}

func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:          editable.Name,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		Deadline:      editable.Deadline,
	}
}

type GoalLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/goals/1a4e3c6d-3a0b-4c47-8c8b-5ae30ff1e0a4"`                             // The goal itself
	Contributions string `json:"contributions" example:"https://example.com/api/v1/goals/1a4e3c6d-3a0b-4c47-8c8b-5ae30ff1e0a4/contributions"` // Add money to the goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Progress  decimal.Decimal `json:"progress" example:"4"`      // Progress towards the target in percent
	Completed bool            `json:"completed" example:"false"` // Is the target reached?
	Links     GoalLinks       `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	self := fmt.Sprintf("%s/v1/goals/%s", baseURL(c), model.ID)

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:          model.Name,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			Deadline:      model.Deadline,
		},
		Progress:  model.Progress().Round(2),
		Completed: model.Completed(),
		Links: GoalLinks{
			Self:          self,
			Contributions: self + "/contributions",
		},
	}
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                          // List of goals
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created goals
}

func (g *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	g.Data = append(g.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ContributionInput struct {
	Amount decimal.Decimal `json:"amount" example:"250"` // Amount to add to the goal
}
