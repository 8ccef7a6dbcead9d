package server

import (
	"net/http"

	"github.com/existflow/ironplan/internal/filter"
	"github.com/existflow/ironplan/internal/label"
	"github.com/existflow/ironplan/internal/model"
	"github.com/existflow/ironplan/internal/schedule"
	"github.com/existflow/ironplan/internal/session"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EmployeesResponse is the team sidebar payload. The counters are taken over
// the whole team, not over the filtered list.
type EmployeesResponse struct {
	Employees []model.Employee `json:"employees"`
	Available int              `json:"available"`
	Busy      int              `json:"busy"`
}

// ScheduleResponse is what a browser calendar widget is fed
type ScheduleResponse struct {
	Config    schedule.Config     `json:"config"`
	Resources []schedule.Resource `json:"resources"`
}

// TaskLabels holds the display strings of a task's enum fields
type TaskLabels struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Duration string `json:"duration"`
}

// TaskResponse is the detail panel payload
type TaskResponse struct {
	Task   model.Task      `json:"task"`
	Owner  *model.Employee `json:"owner,omitempty"`
	Labels TaskLabels      `json:"labels"`
}

type employeeRequest struct {
	EmployeeID string `json:"employee_id"`
}

type taskRequest struct {
	TaskID string `json:"task_id"`
}

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}

func (s *Server) handleEmployees(c echo.Context) error {
	all := s.catalog.Employees()
	employees := filter.Employees(all, c.QueryParam("q"))
	if employees == nil {
		employees = []model.Employee{}
	}
	available, busy := model.CountAvailability(all)

	return c.JSON(http.StatusOK, EmployeesResponse{
		Employees: employees,
		Available: available,
		Busy:      busy,
	})
}

func (s *Server) handleSchedule(c echo.Context) error {
	rows := s.rows
	if rows == nil {
		rows = []schedule.Resource{}
	}
	return c.JSON(http.StatusOK, ScheduleResponse{Config: s.widget, Resources: rows})
}

func (s *Server) handleTask(c echo.Context) error {
	task, ok := s.catalog.Task(c.Param("id"))
	if !ok {
		return errorJSON(c, http.StatusNotFound, "task not found")
	}

	resp := TaskResponse{
		Task: task,
		Labels: TaskLabels{
			Category: label.Category(task.Category),
			Priority: label.Priority(task.Priority),
			Status:   label.Status(task.Status),
			Duration: label.Duration(task.Duration()),
		},
	}
	if owner, ok := s.catalog.Employee(task.EmployeeID); ok {
		resp.Owner = &owner
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleLabels(c echo.Context) error {
	return c.JSON(http.StatusOK, label.All())
}

func (s *Server) handleDataset(c echo.Context) error {
	return c.JSON(http.StatusOK, s.catalog.Dataset())
}

func (s *Server) handleCreateSession(c echo.Context) error {
	return c.JSON(http.StatusCreated, s.sessions.create())
}

// sessionAction runs fn on the session resolved by sessionMiddleware
func (s *Server) sessionAction(c echo.Context, fn func(*session.State)) error {
	id := c.Get("session_id").(uuid.UUID)
	resp, ok := s.sessions.do(id, fn)
	if !ok {
		return errorJSON(c, http.StatusNotFound, "session not found")
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetSession(c echo.Context) error {
	return s.sessionAction(c, nil)
}

func (s *Server) handleSelectEmployee(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	return s.sessionAction(c, func(st *session.State) {
		st.SelectEmployee(req.EmployeeID)
	})
}

func (s *Server) handleClick(c echo.Context) error {
	var click schedule.Click
	if err := c.Bind(&click); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	return s.sessionAction(c, func(st *session.State) {
		st.HandleTileClick(click)
	})
}

func (s *Server) handleClose(c echo.Context) error {
	return s.sessionAction(c, func(st *session.State) {
		st.CloseDetail()
	})
}

// taskID returns the task named in the body, or the selected one when the
// body names none
func taskID(req taskRequest, st *session.State) string {
	if req.TaskID != "" {
		return req.TaskID
	}
	return st.SelectedTaskID()
}

func (s *Server) handleDelete(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	return s.sessionAction(c, func(st *session.State) {
		st.DeleteTask(taskID(req, st))
	})
}

func (s *Server) handleEdit(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	return s.sessionAction(c, func(st *session.State) {
		st.EditTask(taskID(req, st))
	})
}

func (s *Server) handleAdd(c echo.Context) error {
	return s.sessionAction(c, func(st *session.State) {
		st.AddTask()
	})
}

func (s *Server) handlePreviousWeek(c echo.Context) error {
	return s.sessionAction(c, func(st *session.State) {
		st.PreviousWeek()
	})
}

func (s *Server) handleNextWeek(c echo.Context) error {
	return s.sessionAction(c, func(st *session.State) {
		st.NextWeek()
	})
}

func (s *Server) handleToday(c echo.Context) error {
	return s.sessionAction(c, func(st *session.State) {
		st.Today()
	})
}
