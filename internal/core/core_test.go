package core_test

import (
	"context"
	"errors"
	"time"

	"gotodo/internal/core"
	"gotodo/internal/core/fake"
	"gotodo/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Todoer", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		todoer *core.Todoer

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		todoer = core.NewTodoer(fakeLogger, fakeRepo)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			creds core.Credentials
			err   error
		)

		BeforeEach(func() {
			creds = core.Credentials{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			err = todoer.Register(ctx, creds)
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{Username: "testuser"}, nil)
			})

			It("should store a bcrypt digest, never the plaintext", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, username, passwordHash := fakeRepo.CreateUserArgsForCall(0)
				Expect(username).To(Equal("testuser"))
				Expect(passwordHash).NotTo(Equal("testpass"))
				Expect(bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("testpass"))).To(Succeed())
			})

			It("should salt every digest freshly", func() {
				Expect(todoer.Register(ctx, creds)).To(Succeed())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(2))
				_, _, firstHash := fakeRepo.CreateUserArgsForCall(0)
				_, _, secondHash := fakeRepo.CreateUserArgsForCall(1)
				Expect(firstHash).NotTo(Equal(secondHash))
			})
		})

		When("the username already exists", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrUserExists)
			})

			It("should return ErrUsernameTaken", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("create user: fake error"))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			creds          core.Credentials
			hashedPassword string
			err            error
		)

		BeforeEach(func() {
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"

			creds = core.Credentials{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			err = todoer.Authenticate(ctx, creds)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           "some-id",
					Username:     "testuser",
					PasswordHash: hashedPassword,
				}, nil)
			})

			It("should succeed", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal("testuser"))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     "testuser",
					PasswordHash: hashedPassword,
				}, nil)
				creds.Password = "not-testpass"
			})

			It("should return ErrInvalidCredentials", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return the same ErrInvalidCredentials as a wrong password", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("get user from db: fake error"))
			})
		})
	})

	Describe("AddTask", func() {
		var (
			record core.TaskRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = todoer.AddTask(ctx, "buy milk")
		})

		When("the task is created", func() {
			var created time.Time

			BeforeEach(func() {
				created = time.Now().UTC()
				fakeRepo.CreateTaskReturns(repository.Todo{
					ID:          7,
					Content:     "buy milk",
					DateCreated: created,
				}, nil)
			})

			It("should return the stored record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(7)))
				Expect(record.Content).To(Equal("buy milk"))
				Expect(record.Completed).To(BeFalse())
				Expect(record.DateCreated).To(Equal(created))

				Expect(fakeRepo.CreateTaskCallCount()).To(Equal(1))
				_, content := fakeRepo.CreateTaskArgsForCall(0)
				Expect(content).To(Equal("buy milk"))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateTaskReturns(repository.Todo{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("create task: fake error"))
			})
		})
	})

	Describe("Tasks", func() {
		var (
			records []core.TaskRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = todoer.Tasks(ctx)
		})

		When("tasks exist", func() {
			BeforeEach(func() {
				fakeRepo.ListTasksReturns([]repository.Todo{
					{ID: 1, Content: "first"},
					{ID: 2, Content: "second"},
				}, nil)
			})

			It("should return them in repository order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].Content).To(Equal("first"))
				Expect(records[1].Content).To(Equal("second"))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.ListTasksReturns(nil, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("list tasks: fake error"))
			})
		})
	})

	Describe("Task", func() {
		var (
			record core.TaskRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = todoer.Task(ctx, 42)
		})

		When("the task exists", func() {
			BeforeEach(func() {
				fakeRepo.GetTaskReturns(repository.Todo{ID: 42, Content: "found"}, nil)
			})

			It("should return the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(42)))
				Expect(record.Content).To(Equal("found"))

				_, id := fakeRepo.GetTaskArgsForCall(0)
				Expect(id).To(Equal(uint(42)))
			})
		})

		When("the task does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetTaskReturns(repository.Todo{}, repository.ErrTaskNotFound)
			})

			It("should return ErrTaskNotFound", func() {
				Expect(err).To(MatchError(core.ErrTaskNotFound))
			})
		})
	})

	Describe("UpdateTask", func() {
		var err error

		JustBeforeEach(func() {
			err = todoer.UpdateTask(ctx, 42, "new content")
		})

		When("the task exists", func() {
			It("should pass the new content through", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UpdateTaskContentCallCount()).To(Equal(1))
				_, id, content := fakeRepo.UpdateTaskContentArgsForCall(0)
				Expect(id).To(Equal(uint(42)))
				Expect(content).To(Equal("new content"))
			})
		})

		When("the task does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateTaskContentReturns(repository.ErrTaskNotFound)
			})

			It("should return ErrTaskNotFound", func() {
				Expect(err).To(MatchError(core.ErrTaskNotFound))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdateTaskContentReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("update task: fake error"))
			})
		})
	})

	Describe("RemoveTask", func() {
		var err error

		JustBeforeEach(func() {
			err = todoer.RemoveTask(ctx, 42)
		})

		When("the task exists", func() {
			It("should delete it", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeleteTaskCallCount()).To(Equal(1))
				_, id := fakeRepo.DeleteTaskArgsForCall(0)
				Expect(id).To(Equal(uint(42)))
			})
		})

		When("the task does not exist", func() {
			BeforeEach(func() {
				fakeRepo.DeleteTaskReturns(repository.ErrTaskNotFound)
			})

			It("should return ErrTaskNotFound", func() {
				Expect(err).To(MatchError(core.ErrTaskNotFound))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteTaskReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("delete task: fake error"))
			})
		})
	})
})
