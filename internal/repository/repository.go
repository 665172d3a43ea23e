package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gotodo/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")
var ErrTaskNotFound error = errors.New("task not found")

type TodoRepository struct {
	db Storage
}

func NewTodoRepository(db Storage) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

func (r *TodoRepository) MigrateTables(tables ...any) error {
	err := r.db.MigrateTable(tables...)
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser persists a new user. The unique index on username is the
// authority on duplicates: a constraint violation maps to ErrUserExists even
// when two registrations race.
func (r *TodoRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.InsertRecord(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// GetUserByUsername is an exact-match lookup, no case folding.
func (r *TodoRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *TodoRepository) CreateTask(ctx context.Context, content string) (Todo, error) {
	task := Todo{
		Content:     content,
		DateCreated: time.Now().UTC(),
	}

	if err := r.db.InsertRecord(ctx, &task); err != nil {
		return Todo{}, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

// ListTasks returns every task ascending by creation time.
func (r *TodoRepository) ListTasks(ctx context.Context) ([]Todo, error) {
	tasks := []Todo{}

	if err := r.db.GetAllOrdered(ctx, "date_created", &tasks); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *TodoRepository) GetTask(ctx context.Context, id uint) (Todo, error) {
	var task Todo

	err := r.db.GetOneBy(ctx, "id", id, &task)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Todo{}, ErrTaskNotFound
		}
		return Todo{}, fmt.Errorf("get task by id: %w", err)
	}

	return task, nil
}

func (r *TodoRepository) UpdateTaskContent(ctx context.Context, id uint, content string) error {
	affected, err := r.db.UpdateFieldByID(ctx, &Todo{}, id, "content", content)
	if err != nil {
		return fmt.Errorf("update task content: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *TodoRepository) DeleteTask(ctx context.Context, id uint) error {
	affected, err := r.db.DeleteByID(ctx, &Todo{}, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
