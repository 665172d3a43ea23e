package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"gotodo/internal/repository"
)

var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrTaskNotFound error = errors.New("task not found")

// Todoer is a struct that provides the application operations backed by the database.
type Todoer struct {
	logs *zap.SugaredLogger
	repo Repository
}

// NewTodoer is a constructor function for the Todoer type.
func NewTodoer(logger *zap.SugaredLogger, repo Repository) *Todoer {
	return &Todoer{
		logs: logger,
		repo: repo,
	}
}

// Register creates a user with a salted bcrypt digest of the password. The
// plaintext is never persisted or logged. Two registrations of the same
// password produce different digests.
func (t *Todoer) Register(ctx context.Context, msg Credentials) error {
	digest, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = t.repo.CreateUser(ctx, msg.Username, string(digest))
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	t.logs.Infow("user registered", "username", msg.Username)
	return nil
}

// Authenticate checks the provided username and password against the database.
// Unknown user and wrong password both collapse into ErrInvalidCredentials so
// callers cannot tell which field was wrong.
func (t *Todoer) Authenticate(ctx context.Context, msg Credentials) error {
	user, err := t.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}

func (t *Todoer) AddTask(ctx context.Context, content string) (TaskRecord, error) {
	task, err := t.repo.CreateTask(ctx, content)
	if err != nil {
		return TaskRecord{}, fmt.Errorf("create task: %w", err)
	}

	t.logs.Infow("task created", "id", task.ID)
	return repoTaskToRecord(task), nil
}

// Tasks returns all tasks ascending by creation time. The list is global, it
// is not scoped to the authenticated user.
func (t *Todoer) Tasks(ctx context.Context) ([]TaskRecord, error) {
	tasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	records := make([]TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = repoTaskToRecord(task)
	}
	return records, nil
}

func (t *Todoer) Task(ctx context.Context, id uint) (TaskRecord, error) {
	task, err := t.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return TaskRecord{}, ErrTaskNotFound
		}
		return TaskRecord{}, fmt.Errorf("get task: %w", err)
	}

	return repoTaskToRecord(task), nil
}

// UpdateTask overwrites the task's content in place. ID and creation time are
// untouched.
func (t *Todoer) UpdateTask(ctx context.Context, id uint, content string) error {
	err := t.repo.UpdateTaskContent(ctx, id, content)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("update task: %w", err)
	}

	t.logs.Infow("task updated", "id", id)
	return nil
}

func (t *Todoer) RemoveTask(ctx context.Context, id uint) error {
	err := t.repo.DeleteTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}

	t.logs.Infow("task deleted", "id", id)
	return nil
}

func repoTaskToRecord(task repository.Todo) TaskRecord {
	return TaskRecord{
		ID:          task.ID,
		Content:     task.Content,
		Completed:   task.Completed,
		DateCreated: task.DateCreated,
	}
}
