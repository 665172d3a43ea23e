package handler

import (
	"context"
	"net/http"

	"gotodo/internal/core"
	"gotodo/internal/http/payload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name FormValidator . FormValidator
type FormValidator interface {
	DecodeAndValidateForm(r *http.Request, object payload.Form) error
}

//counterfeiter:generate -o fake -fake-name TodoService . TodoService
type TodoService interface {
	Register(ctx context.Context, msg core.Credentials) error
	Authenticate(ctx context.Context, msg core.Credentials) error
	AddTask(ctx context.Context, content string) (core.TaskRecord, error)
	Tasks(ctx context.Context) ([]core.TaskRecord, error)
	Task(ctx context.Context, id uint) (core.TaskRecord, error)
	UpdateTask(ctx context.Context, id uint, content string) error
	RemoveTask(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name SessionService . SessionService
type SessionService interface {
	SignIn(w http.ResponseWriter, r *http.Request, username string) error
	SignOut(w http.ResponseWriter, r *http.Request) error
	CurrentUser(r *http.Request) (string, bool)
}
