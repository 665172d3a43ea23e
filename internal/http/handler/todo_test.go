package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"gotodo/internal/core"
	"gotodo/internal/http/handler"
	"gotodo/internal/http/handler/fake"
	"gotodo/internal/http/payload"
	"gotodo/internal/http/view"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TodoHandler", func() {
	var (
		th            *handler.TodoHandler
		fakeService   *fake.TodoService
		fakeSessions  *fake.SessionService
		fakeValidator *fake.FormValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	formRequest := func(method, target, body string) *http.Request {
		r := httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return r
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.TodoService)
		fakeSessions = new(fake.SessionService)
		fakeValidator = new(fake.FormValidator)

		// decode real form bodies unless a test overrides this
		fakeValidator.DecodeAndValidateFormStub = func(r *http.Request, object payload.Form) error {
			if err := r.ParseForm(); err != nil {
				return err
			}
			object.FromForm(r.PostForm)
			return object.Validate()
		}

		views, err := view.NewRenderer()
		Expect(err).NotTo(HaveOccurred())

		w = httptest.NewRecorder()
		th = handler.NewTodoHandler(fakeLogger, fakeValidator, fakeService, fakeSessions, views)
	})

	Describe("HandleHome", func() {
		JustBeforeEach(func() {
			th.HandleHome(w, req)
		})

		When("the visitor is anonymous", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/", nil)
				fakeSessions.CurrentUserReturns("", false)
			})

			It("should render the landing page", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Login"))
				Expect(w.Body.String()).To(ContainSubstring("Register"))
				Expect(fakeService.TasksCallCount()).To(Equal(0))
			})
		})

		When("the visitor is authenticated", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/", nil)
				fakeSessions.CurrentUserReturns("alice", true)
				fakeService.TasksReturns([]core.TaskRecord{
					{ID: 1, Content: "buy milk"},
				}, nil)
			})

			It("should render the dashboard with the task list", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("alice"))
				Expect(w.Body.String()).To(ContainSubstring("buy milk"))
			})
		})
	})

	Describe("HandleDashboard", func() {
		JustBeforeEach(func() {
			th.HandleDashboard(w, req)
		})

		When("the visitor is anonymous", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/dashboard", nil)
				fakeSessions.CurrentUserReturns("", false)
			})

			It("should redirect to the landing page", func() {
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})

		When("listing tasks fails", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/dashboard", nil)
				fakeSessions.CurrentUserReturns("alice", true)
				fakeService.TasksReturns(nil, fakeErr)
			})

			It("should respond with an internal error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleLogin", func() {
		JustBeforeEach(func() {
			th.HandleLogin(w, req)
		})

		When("credentials are valid", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/login", "username=alice&password=secret1")
				fakeService.AuthenticateReturns(nil)
			})

			It("should sign in and redirect to the dashboard", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/dashboard"))

				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg).To(Equal(core.Credentials{Username: "alice", Password: "secret1"}))

				Expect(fakeSessions.SignInCallCount()).To(Equal(1))
				_, _, username := fakeSessions.SignInArgsForCall(0)
				Expect(username).To(Equal("alice"))
			})
		})

		When("credentials are rejected", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/login", "username=alice&password=wrong")
				fakeService.AuthenticateReturns(core.ErrInvalidCredentials)
			})

			It("should re-render the landing page with a generic error", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Invalid username or password."))
				Expect(fakeSessions.SignInCallCount()).To(Equal(0))
			})
		})

		When("the form is invalid", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/login", "username=alice")
			})

			It("should re-render without calling Authenticate", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Invalid username or password."))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/login", "username=alice&password=secret1")
				fakeService.AuthenticateReturns(fakeErr)
			})

			It("should respond with an internal error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleRegister", func() {
		JustBeforeEach(func() {
			th.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/register", "username=bob&password=pw1")
				fakeService.RegisterReturns(nil)
			})

			It("should auto-authenticate and redirect to the dashboard", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/dashboard"))

				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg).To(Equal(core.Credentials{Username: "bob", Password: "pw1"}))

				Expect(fakeSessions.SignInCallCount()).To(Equal(1))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/register", "username=bob&password=pw2")
				fakeService.RegisterReturns(core.ErrUsernameTaken)
			})

			It("should re-render the landing page with a username-taken error", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("already taken"))
				Expect(fakeSessions.SignInCallCount()).To(Equal(0))
			})
		})

		When("the form is invalid", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/register", "username="+url.QueryEscape(strings.Repeat("x", 21))+"&password=pw1")
			})

			It("should re-render without calling Register", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleLogout", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/logout", nil)
		})

		JustBeforeEach(func() {
			th.HandleLogout(w, req)
		})

		It("should destroy the session and redirect home", func() {
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/"))
			Expect(fakeSessions.SignOutCallCount()).To(Equal(1))
		})

		When("destroying the session fails", func() {
			BeforeEach(func() {
				fakeSessions.SignOutReturns(fakeErr)
			})

			It("should still redirect home", func() {
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})
	})

	Describe("HandleAddTask", func() {
		JustBeforeEach(func() {
			th.HandleAddTask(w, req)
		})

		When("the visitor is anonymous", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/", "content=buy+milk")
				fakeSessions.CurrentUserReturns("", false)
			})

			It("should redirect home without creating anything", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(fakeService.AddTaskCallCount()).To(Equal(0))
			})
		})

		When("the task is valid", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/", "content=buy+milk")
				fakeSessions.CurrentUserReturns("alice", true)
			})

			It("should create the task and redirect home", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/"))

				Expect(fakeService.AddTaskCallCount()).To(Equal(1))
				_, content := fakeService.AddTaskArgsForCall(0)
				Expect(content).To(Equal("buy milk"))
			})
		})

		When("the storage write fails", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/", "content=buy+milk")
				fakeSessions.CurrentUserReturns("alice", true)
				fakeService.AddTaskReturns(core.TaskRecord{}, fakeErr)
			})

			It("should swallow the failure and redirect home", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})

		When("the form is invalid", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/", "content=")
				fakeSessions.CurrentUserReturns("alice", true)
			})

			It("should redirect home without creating anything", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(fakeService.AddTaskCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleDeleteTask", func() {
		JustBeforeEach(func() {
			th.HandleDeleteTask(w, req)
		})

		When("the task exists", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/delete/5", nil)
				req.SetPathValue("id", "5")
				fakeSessions.CurrentUserReturns("alice", true)
			})

			It("should delete it and redirect home", func() {
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/"))

				Expect(fakeService.RemoveTaskCallCount()).To(Equal(1))
				_, id := fakeService.RemoveTaskArgsForCall(0)
				Expect(id).To(Equal(uint(5)))
			})
		})

		When("the task does not exist", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/delete/99", nil)
				req.SetPathValue("id", "99")
				fakeSessions.CurrentUserReturns("alice", true)
				fakeService.RemoveTaskReturns(core.ErrTaskNotFound)
			})

			It("should fail the request with a not found response", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not numeric", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/delete/abc", nil)
				req.SetPathValue("id", "abc")
				fakeSessions.CurrentUserReturns("alice", true)
			})

			It("should fail the request with a not found response", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(fakeService.RemoveTaskCallCount()).To(Equal(0))
			})
		})

		When("the delete fails in storage", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/delete/5", nil)
				req.SetPathValue("id", "5")
				fakeSessions.CurrentUserReturns("alice", true)
				fakeService.RemoveTaskReturns(fakeErr)
			})

			It("should swallow the failure and redirect home", func() {
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})
	})

	Describe("HandleEditTask", func() {
		JustBeforeEach(func() {
			th.HandleEditTask(w, req)
		})

		When("the task exists", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/update/5", nil)
				req.SetPathValue("id", "5")
				fakeSessions.CurrentUserReturns("alice", true)
				fakeService.TaskReturns(core.TaskRecord{ID: 5, Content: "buy milk"}, nil)
			})

			It("should render the pre-filled edit form", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`value="buy milk"`))
				Expect(w.Body.String()).To(ContainSubstring("/update/5"))
			})
		})

		When("the task does not exist", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/update/99", nil)
				req.SetPathValue("id", "99")
				fakeSessions.CurrentUserReturns("alice", true)
				fakeService.TaskReturns(core.TaskRecord{}, core.ErrTaskNotFound)
			})

			It("should fail the request with a not found response", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleUpdateTask", func() {
		JustBeforeEach(func() {
			th.HandleUpdateTask(w, req)
		})

		When("the update succeeds", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/update/5", "content=buy+oat+milk")
				req.SetPathValue("id", "5")
				fakeSessions.CurrentUserReturns("alice", true)
			})

			It("should apply the new content and redirect home", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/"))

				Expect(fakeService.UpdateTaskCallCount()).To(Equal(1))
				_, id, content := fakeService.UpdateTaskArgsForCall(0)
				Expect(id).To(Equal(uint(5)))
				Expect(content).To(Equal("buy oat milk"))
			})
		})

		When("the task does not exist", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/update/99", "content=whatever")
				req.SetPathValue("id", "99")
				fakeSessions.CurrentUserReturns("alice", true)
				fakeService.UpdateTaskReturns(core.ErrTaskNotFound)
			})

			It("should fail the request with a not found response", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the storage write fails", func() {
			BeforeEach(func() {
				req = formRequest("POST", "/update/5", "content=whatever")
				req.SetPathValue("id", "5")
				fakeSessions.CurrentUserReturns("alice", true)
				fakeService.UpdateTaskReturns(fakeErr)
			})

			It("should swallow the failure and redirect home", func() {
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})
	})
})
