package v1

import (
	"fmt"
	"time"

	"github.com/homeledger/backend/internal/models"
	ez_uuid "github.com/homeledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TodoEditable represents all user configurable parameters
type TodoEditable struct {
	HouseholdID uuid.UUID `json:"householdId" example:"6a9f3e1b-cbbd-4d37-a1eb-2c6d0e41ef33"` // ID of the household the todo belongs to
	Title       string    `json:"title" example:"Buy light bulbs" default:""`                 // What needs to be done
	Requester   string    `json:"requester" example:"Ann" default:""`                         // Household member who asked for it
	Assignee    string    `json:"assignee" example:"Ben" default:""`                          // Household member who should do it
	DueDate     time.Time `json:"dueDate" example:"2024-03-20T00:00:00Z"`                     // When it should be done
	Completed   bool      `json:"completed" example:"false" default:"false"`                  // Has it been done?
	Memo        string    `json:"memo" example:"The kitchen one flickers" default:""`         // Notes about the todo
}

func (editable TodoEditable) model() models.Todo {
	return models.Todo{
		HouseholdID: editable.HouseholdID,
		Title:       editable.Title,
		Requester:   editable.Requester,
		Assignee:    editable.Assignee,
		DueDate:     editable.DueDate,
		Completed:   editable.Completed,
		Memo:        editable.Memo,
	}
}

type TodoLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/todos/7e58e39a-dd2e-44ac-bb3f-11df419f9a1f"`           // The todo itself
	Household string `json:"household" example:"https://example.com/api/v1/households/6a9f3e1b-cbbd-4d37-a1eb-2c6d0e41ef33"` // The household the todo belongs to
}

type Todo struct {
	models.DefaultModel
	TodoEditable
	CompletedAt *time.Time `json:"completedAt" example:"2024-03-21T17:31:00Z"` // When it was done. Only set for completed todos
	Links       TodoLinks  `json:"links"`
}

func newTodo(c *gin.Context, model models.Todo) Todo {
	url := c.GetString(string(models.DBContextURL))

	return Todo{
		DefaultModel: model.DefaultModel,
		TodoEditable: TodoEditable{
			HouseholdID: model.HouseholdID,
			Title:       model.Title,
			Requester:   model.Requester,
			Assignee:    model.Assignee,
			DueDate:     model.DueDate,
			Completed:   model.Completed,
			Memo:        model.Memo,
		},
		CompletedAt: model.CompletedAt,
		Links: TodoLinks{
			Self:      fmt.Sprintf("%s/v1/todos/%s", url, model.ID),
			Household: fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
		},
	}
}

type TodoListResponse struct {
	Data       []Todo      `json:"data"`                                                          // List of Todos
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TodoCreateResponse struct {
	Data  []TodoResponse `json:"data"`                                                          // List of the created Todos or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TodoCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TodoResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TodoResponse struct {
	Data  *Todo   `json:"data"`                                                          // Data for the Todo
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TodoQueryFilter struct {
	HouseholdID ez_uuid.UUID `form:"household"`                  // By ID of the Household
	Assignee    string       `form:"assignee"`                   // By household member the todo is assigned to
	Requester   string       `form:"requester"`                  // By household member who requested the todo
	Completed   bool         `form:"completed"`                  // Has the todo been done?
	Offset      uint         `form:"offset" filterField:"false"` // The offset of the first Todo returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`  // Maximum number of Todos to return. Defaults to 50.
}

func (f TodoQueryFilter) model() models.Todo {
	return models.Todo{
		HouseholdID: f.HouseholdID.UUID,
		Assignee:    f.Assignee,
		Requester:   f.Requester,
		Completed:   f.Completed,
	}
}
