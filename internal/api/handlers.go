package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/duoday/daily/internal/error_values"
	"github.com/duoday/daily/internal/service"
	"github.com/duoday/daily/pkg/entity"
	"github.com/duoday/daily/pkg/httputil"
)

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

type CreateTaskRequest struct {
	UserID int    `json:"user_id"`
	Text   string `json:"text"`
	Date   string `json:"date,omitempty"`
}

type SetCompletionRequest struct {
	ID        int  `json:"id"`
	Completed bool `json:"completed"`
}

type DeleteTaskRequest struct {
	ID int `json:"id"`
}

type GetTasksResponse struct {
	Tasks []*entity.Task      `json:"tasks"`
	Users []entity.PublicUser `json:"users"`
	Date  string              `json:"date"`
}

type GetStreaksResponse struct {
	Streaks []entity.UserStreak `json:"streaks"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Authenticate(ctx, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			// Same message whether the name or the password was wrong
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		logger.Error("login error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LoginResponse{
		ID:    user.ID,
		Name:  user.Name,
		Token: token,
	})
	logger.Info("successful login")
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	tasks, users, date, err := s.tasksService.ListForDate(ctx, r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			logger.Error("get tasks error: invalid date param")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		logger.Error("get tasks error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting tasks", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetTasksResponse{
		Tasks: tasks,
		Users: users,
		Date:  date,
	})
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateTaskRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if uid, err := GetUIDFromContext(r); err == nil && uid != req.UserID {
		// The UI scopes edits to the owner but the API trusts the caller
		logger.Warn("task created on behalf of another user", slog.Int("owner", req.UserID))
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	id, err := s.tasksService.Create(ctx, &service.CreateTaskRequest{
		UserID: req.UserID,
		Text:   req.Text,
		Date:   req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptyText):
			logger.Error("create task error: blank text")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "text is required", nil)
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("create task error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create task error: unknown owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("create task error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating task", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"id": id})
	logger.Info("task created")
}

func (s *Server) SetTaskCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SetCompletionRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set completion error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.tasksService.SetCompletion(ctx, req.ID, req.Completed)
	if err != nil {
		logger.Error("set completion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating task", nil)
		return
	}
	httputil.WriteOKResponse(w)
	logger.Info("task completion updated", slog.Bool("completed", req.Completed))
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req DeleteTaskRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("delete task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.tasksService.Delete(ctx, req.ID)
	if err != nil {
		logger.Error("delete task error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting task", nil)
		return
	}
	httputil.WriteOKResponse(w)
	logger.Info("task deleted")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.statsService.GetRangeStats(ctx, r.URL.Query().Get("range"))
	if err != nil {
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while aggregating stats", nil)
		return
	}
	if r.URL.Query().Get("bucket") == "week" {
		stats.ChartData = s.statsService.BucketWeekly(stats.ChartData)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetStreaks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	streaks, err := s.streaksService.GetStreaks(ctx)
	if err != nil {
		logger.Error("get streaks error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while computing streaks", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetStreaksResponse{Streaks: streaks})
}
