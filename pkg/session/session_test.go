package session_test

import (
	"net/http"
	"net/http/httptest"

	"gotodo/pkg/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CookieService", func() {
	var service *session.CookieService

	// carries the cookies from one response over to the next request
	withCookies := func(req *http.Request, w *httptest.ResponseRecorder) *http.Request {
		for _, c := range w.Result().Cookies() {
			req.AddCookie(c)
		}
		return req
	}

	BeforeEach(func() {
		service = session.NewCookieService([]byte("test-secret"))
	})

	Describe("SignIn", func() {
		It("should set a session cookie carrying the username", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/login", nil)

			err := service.SignIn(w, req, "alice")
			Expect(err).NotTo(HaveOccurred())

			next := withCookies(httptest.NewRequest("GET", "/dashboard", nil), w)
			username, ok := service.CurrentUser(next)
			Expect(ok).To(BeTrue())
			Expect(username).To(Equal("alice"))
		})

		It("should not store the username in clear text", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/login", nil)

			err := service.SignIn(w, req, "alice")
			Expect(err).NotTo(HaveOccurred())

			cookies := w.Result().Cookies()
			Expect(cookies).NotTo(BeEmpty())
			Expect(cookies[0].Value).NotTo(ContainSubstring("alice"))
		})
	})

	Describe("SignOut", func() {
		It("should expire the session cookie", func() {
			signIn := httptest.NewRecorder()
			err := service.SignIn(signIn, httptest.NewRequest("POST", "/login", nil), "alice")
			Expect(err).NotTo(HaveOccurred())

			signOut := httptest.NewRecorder()
			req := withCookies(httptest.NewRequest("GET", "/logout", nil), signIn)
			err = service.SignOut(signOut, req)
			Expect(err).NotTo(HaveOccurred())

			cookies := signOut.Result().Cookies()
			Expect(cookies).NotTo(BeEmpty())
			Expect(cookies[0].MaxAge).To(Equal(-1))
		})

		It("should succeed for an anonymous request", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/logout", nil)

			Expect(service.SignOut(w, req)).To(Succeed())
		})
	})

	Describe("CurrentUser", func() {
		It("should report anonymous when no cookie is present", func() {
			req := httptest.NewRequest("GET", "/", nil)

			username, ok := service.CurrentUser(req)
			Expect(ok).To(BeFalse())
			Expect(username).To(BeEmpty())
		})

		It("should report anonymous for a tampered cookie", func() {
			req := httptest.NewRequest("GET", "/", nil)
			req.AddCookie(&http.Cookie{Name: "todo_session", Value: "forged-value"})

			_, ok := service.CurrentUser(req)
			Expect(ok).To(BeFalse())
		})

		It("should report anonymous for a cookie signed with another secret", func() {
			other := session.NewCookieService([]byte("other-secret"))
			w := httptest.NewRecorder()
			err := other.SignIn(w, httptest.NewRequest("POST", "/login", nil), "alice")
			Expect(err).NotTo(HaveOccurred())

			req := withCookies(httptest.NewRequest("GET", "/", nil), w)
			_, ok := service.CurrentUser(req)
			Expect(ok).To(BeFalse())
		})
	})
})
