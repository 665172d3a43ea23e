package core

import (
	"context"

	"gotodo/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateTask(ctx context.Context, content string) (repository.Todo, error)
	ListTasks(ctx context.Context) ([]repository.Todo, error)
	GetTask(ctx context.Context, id uint) (repository.Todo, error)
	UpdateTaskContent(ctx context.Context, id uint, content string) error
	DeleteTask(ctx context.Context, id uint) error
}
