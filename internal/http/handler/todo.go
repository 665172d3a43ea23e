package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"gotodo/internal/core"
	"gotodo/internal/http/handler/middleware"
	"gotodo/internal/http/payload"
	"gotodo/internal/http/view"
)

var (
	Home       = "GET /{$}"
	AddTask    = "POST /{$}"
	Login      = "POST /login"
	Register   = "POST /register"
	Dashboard  = "GET /dashboard"
	Logout     = "GET /logout"
	DeleteTask = "GET /delete/{id}"
	EditTask   = "GET /update/{id}"
	UpdateTask = "POST /update/{id}"
)

type TodoHandler struct {
	logs          *zap.SugaredLogger
	formValidator FormValidator
	todos         TodoService
	sessions      SessionService
	views         *view.Renderer
}

func NewTodoHandler(
	logger *zap.SugaredLogger,
	formValidator FormValidator,
	todoService TodoService,
	sessionService SessionService,
	views *view.Renderer,
) *TodoHandler {
	return &TodoHandler{
		logs:          logger,
		formValidator: formValidator,
		todos:         todoService,
		sessions:      sessionService,
		views:         views,
	}
}

// HandleHome serves the landing page for anonymous visitors and the dashboard
// for authenticated ones.
func (h *TodoHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	username, ok := h.sessions.CurrentUser(r)
	if !ok {
		h.renderLanding(w, "", requestId)
		return
	}

	h.renderDashboard(w, r, username, Home, requestId)
}

// HandleDashboard serves the authenticated task list; anonymous requests are
// sent back to the landing page.
func (h *TodoHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	username, ok := h.sessions.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.renderDashboard(w, r, username, Dashboard, requestId)
}

func (h *TodoHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var form payload.CredentialsForm
	if err := h.formValidator.DecodeAndValidateForm(r, &form); err != nil {
		h.logs.Errorw("failed to decode and validate login form",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		h.renderLanding(w, invalidCredentialsMsg, requestId)
		return
	}

	err := h.todos.Authenticate(r.Context(), form.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			h.renderLanding(w, invalidCredentialsMsg, requestId)
			return
		}
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	h.signInAndRedirect(w, r, form.Username, Login, requestId)
}

func (h *TodoHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var form payload.CredentialsForm
	if err := h.formValidator.DecodeAndValidateForm(r, &form); err != nil {
		h.logs.Errorw("failed to decode and validate register form",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		h.renderLanding(w, invalidRegistrationMsg, requestId)
		return
	}

	err := h.todos.Register(r.Context(), form.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrUsernameTaken) {
			h.renderLanding(w, usernameTakenMsg, requestId)
			return
		}
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	// registration auto-authenticates
	h.signInAndRedirect(w, r, form.Username, Register, requestId)
}

func (h *TodoHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if err := h.sessions.SignOut(w, r); err != nil {
		h.logs.Errorw("failed to destroy session",
			"error", err,
			"handler", Logout,
			"request_id", requestId)
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleAddTask creates a task from the dashboard form. Validation and
// storage failures are logged and swallowed: the user is redirected home
// either way.
func (h *TodoHandler) HandleAddTask(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := h.sessions.CurrentUser(r); !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	var form payload.TaskForm
	if err := h.formValidator.DecodeAndValidateForm(r, &form); err != nil {
		h.logs.Errorw("failed to decode and validate task form",
			"error", err,
			"handler", AddTask,
			"request_id", requestId)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, err := h.todos.AddTask(r.Context(), form.Content); err != nil {
		h.logs.Errorw("failed to create task",
			"error", err,
			"handler", AddTask,
			"request_id", requestId)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleDeleteTask removes a task. An unknown id fails the request with a 404,
// any other storage failure is logged and the redirect happens anyway.
func (h *TodoHandler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := h.sessions.CurrentUser(r); !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	id, err := taskID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	err = h.todos.RemoveTask(r.Context(), id)
	if errors.Is(err, core.ErrTaskNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logs.Errorw("failed to delete task",
			"error", err,
			"handler", DeleteTask,
			"request_id", requestId)
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleEditTask renders the edit form pre-filled with the task's current
// content.
func (h *TodoHandler) HandleEditTask(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := h.sessions.CurrentUser(r); !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	id, err := taskID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	task, err := h.todos.Task(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrTaskNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logs.Errorw("failed to get task",
			"error", err,
			"handler", EditTask,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	if err := h.views.EditTask(w, view.EditData{Task: task}); err != nil {
		h.logs.Errorw("failed to render edit form",
			"error", err,
			"handler", EditTask,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
	}
}

// HandleUpdateTask applies the edit form. An unknown id is a 404, other
// storage failures are logged and swallowed.
func (h *TodoHandler) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := h.sessions.CurrentUser(r); !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id, err := taskID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var form payload.TaskForm
	if err := h.formValidator.DecodeAndValidateForm(r, &form); err != nil {
		h.logs.Errorw("failed to decode and validate task form",
			"error", err,
			"handler", UpdateTask,
			"request_id", requestId)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	err = h.todos.UpdateTask(r.Context(), id, form.Content)
	if errors.Is(err, core.ErrTaskNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logs.Errorw("failed to update task",
			"error", err,
			"handler", UpdateTask,
			"request_id", requestId)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *TodoHandler) renderDashboard(w http.ResponseWriter, r *http.Request, username, route, requestId string) {
	tasks, err := h.todos.Tasks(r.Context())
	if err != nil {
		h.logs.Errorw("failed to list tasks",
			"error", err,
			"handler", route,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	data := view.DashboardData{
		Username: username,
		Tasks:    tasks,
	}
	if err := h.views.Dashboard(w, data); err != nil {
		h.logs.Errorw("failed to render dashboard",
			"error", err,
			"handler", route,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
	}
}

func (h *TodoHandler) renderLanding(w http.ResponseWriter, errMsg, requestId string) {
	if err := h.views.Landing(w, view.LandingData{Error: errMsg}); err != nil {
		h.logs.Errorw("failed to render landing page",
			"error", err,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
	}
}

func (h *TodoHandler) signInAndRedirect(w http.ResponseWriter, r *http.Request, username, route, requestId string) {
	if err := h.sessions.SignIn(w, r, username); err != nil {
		h.logs.Errorw("failed to save session",
			"error", err,
			"handler", route,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func taskID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
