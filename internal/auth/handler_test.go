package auth_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pacs/internal/auth"
	userDatamodel "pacs/internal/core/datamodel/user"
	"pacs/internal/transport"
)

var _ = Describe("Auth Handler", func() {
	var (
		mockUsers *MockUserRepository
		generator *auth.JWTTokenGenerator
		service   *auth.Service
		handler   *auth.Handler
		router    chi.Router
	)

	issueToken := func(email, password string) string {
		schema, err := service.Authenticate(auth.LoginDTO{Email: email, Password: password})
		Expect(err).NotTo(HaveOccurred())
		return schema.AccessToken
	}

	BeforeEach(func() {
		mockUsers = NewMockUserRepository()
		generator = auth.NewJWTTokenGenerator("test-signing-key", time.Hour)
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(mockUsers, generator, slogger)
		handler = auth.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		adminHash, err := auth.HashPassword("s3cret", 4)
		Expect(err).NotTo(HaveOccurred())
		mockUsers.Add(&userDatamodel.User{
			ID: 1, Email: "admin@example.com", PasswordHash: adminHash, IsSuperuser: true,
		})

		clerkHash, err := auth.HashPassword("cl3rk", 4)
		Expect(err).NotTo(HaveOccurred())
		mockUsers.Add(&userDatamodel.User{
			ID: 2, Email: "clerk@example.com", PasswordHash: clerkHash, IsSuperuser: false,
		})

		router = chi.NewRouter()
		router.Post("/token", handler.Login)
		router.Group(func(pr chi.Router) {
			pr.Use(handler.AuthMiddleware)
			pr.Get("/departments", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			pr.Group(func(sr chi.Router) {
				sr.Use(handler.RequireSuperuser)
				sr.Get("/users", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				})
			})
		})
	})

	Describe("Login", func() {
		It("should issue a token for a JSON body", func() {
			body := strings.NewReader(`{"email": "admin@example.com", "password": "s3cret"}`)
			req := httptest.NewRequest(http.MethodPost, "/token", body)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("access_token"))
			Expect(w.Body.String()).To(ContainSubstring(`"token_type":"bearer"`))
		})

		It("should issue a token for an OAuth2 form post", func() {
			body := strings.NewReader("username=admin%40example.com&password=s3cret")
			req := httptest.NewRequest(http.MethodPost, "/token", body)
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("access_token"))
		})

		It("should answer 401 for bad credentials", func() {
			body := strings.NewReader(`{"email": "admin@example.com", "password": "wrong"}`)
			req := httptest.NewRequest(http.MethodPost, "/token", body)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("Incorrect username or password"))
		})
	})

	Describe("AuthMiddleware", func() {
		It("should answer 401 without a token", func() {
			req := httptest.NewRequest(http.MethodGet, "/departments", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should answer 401 for a garbage token", func() {
			req := httptest.NewRequest(http.MethodGet, "/departments", nil)
			req.Header.Set("Authorization", "Bearer not.a.token")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should answer 401 for an expired token", func() {
			expired := auth.NewJWTTokenGenerator("test-signing-key", -time.Minute)
			token, err := expired.GenerateAccessToken("admin@example.com")
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/departments", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("Token expired"))
		})

		It("should pass a valid principal through", func() {
			token := issueToken("clerk@example.com", "cl3rk")

			req := httptest.NewRequest(http.MethodGet, "/departments", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("RequireSuperuser", func() {
		It("should answer 403 for an authenticated non-superuser", func() {
			token := issueToken("clerk@example.com", "cl3rk")

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(w.Body.String()).To(ContainSubstring("Operation not permitted"))
		})

		It("should admit a superuser", func() {
			token := issueToken("admin@example.com", "s3cret")

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})
})
