package v1

import (
	"net/http"

	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterTodoRoutes registers the routes for todos with
// the RouterGroup that is passed.
func RegisterTodoRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTodoList)
		r.GET("", GetTodos)
		r.POST("", CreateTodos)
	}

	// Todo with ID
	{
		r.OPTIONS("/:id", OptionsTodoDetail)
		r.GET("/:id", GetTodo)
		r.PATCH("/:id", UpdateTodo)
		r.DELETE("/:id", DeleteTodo)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Todos
// @Success		204
// @Router			/v1/todos [options]
func OptionsTodoList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Todos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/todos/{id} [options]
func OptionsTodoDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Todo{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create todos
// @Description	Creates new todos
// @Tags			Todos
// @Produce		json
// @Success		201		{object}	TodoCreateResponse
// @Failure		400		{object}	TodoCreateResponse
// @Failure		404		{object}	TodoCreateResponse
// @Failure		500		{object}	TodoCreateResponse
// @Param			todos	body		[]TodoEditable	true	"Todos"
// @Router			/v1/todos [post]
func CreateTodos(c *gin.Context) {
	var editables []TodoEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TodoCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TodoCreateResponse{}

	for _, editable := range editables {
		todo := editable.model()

		err = models.DB.Create(&todo).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTodo(c, todo)
		r.Data = append(r.Data, TodoResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get todos
// @Description	Returns a list of todos
// @Tags			Todos
// @Produce		json
// @Success		200	{object}	TodoListResponse
// @Failure		400	{object}	TodoListResponse
// @Failure		500	{object}	TodoListResponse
// @Router			/v1/todos [get]
// @Param			household	query	string	false	"Filter by household ID"
// @Param			assignee	query	string	false	"Filter by assigned household member"
// @Param			requester	query	string	false	"Filter by requesting household member"
// @Param			completed	query	bool	false	"Has the todo been done?"
// @Param			offset		query	uint	false	"The offset of the first Todo returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Todos to return. Defaults to 50."
func GetTodos(c *gin.Context) {
	var filter TodoQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("datetime(due_date) ASC, datetime(created_at) ASC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Todos and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var todos []models.Todo
	err := q.Find(&todos).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TodoListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TodoListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Todo, 0)
	for _, todo := range todos {
		data = append(data, newTodo(c, todo))
	}

	c.JSON(http.StatusOK, TodoListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get todo
// @Description	Returns a specific todo
// @Tags			Todos
// @Produce		json
// @Success		200	{object}	TodoResponse
// @Failure		400	{object}	TodoResponse
// @Failure		404	{object}	TodoResponse
// @Failure		500	{object}	TodoResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/todos/{id} [get]
func GetTodo(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TodoResponse{
			Error: &s,
		})
		return
	}

	var todo models.Todo
	err = models.DB.First(&todo, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TodoResponse{
			Error: &s,
		})
		return
	}

	data := newTodo(c, todo)
	c.JSON(http.StatusOK, TodoResponse{Data: &data})
}

// @Summary		Update todo
// @Description	Update an existing todo. Only values to be updated need to be specified. Completing a todo is a PATCH with the completed field, the completion timestamp is maintained automatically.
// @Tags			Todos
// @Accept			json
// @Produce		json
// @Success		200		{object}	TodoResponse
// @Failure		400		{object}	TodoResponse
// @Failure		404		{object}	TodoResponse
// @Failure		500		{object}	TodoResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			todo	body		TodoEditable	true	"Todo"
// @Router			/v1/todos/{id} [patch]
func UpdateTodo(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TodoResponse{
			Error: &s,
		})
		return
	}

	var todo models.Todo
	err = models.DB.First(&todo, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TodoResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TodoEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TodoResponse{
			Error: &s,
		})
		return
	}

	var data TodoEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TodoResponse{
			Error: &s,
		})
		return
	}

	// The completion timestamp is maintained together with the flag
	for _, field := range updateFields {
		if field == "Completed" {
			updateFields = append(updateFields, "CompletedAt")
			break
		}
	}

	err = models.DB.Model(&todo).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TodoResponse{
			Error: &s,
		})
		return
	}

	r := newTodo(c, todo)
	c.JSON(http.StatusOK, TodoResponse{Data: &r})
}

// @Summary		Delete todo
// @Description	Deletes a todo
// @Tags			Todos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/todos/{id} [delete]
func DeleteTodo(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var todo models.Todo
	err = models.DB.First(&todo, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&todo).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
