package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pacs/internal/transport/middleware"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Middleware Suite")
}

var _ = Describe("RequestLogger", func() {
	var (
		logOutput *bytes.Buffer
		logger    *slog.Logger
		handler   http.Handler
	)

	newHandler := func(inner http.HandlerFunc) http.Handler {
		return middleware.RequestLogger(logger)(inner)
	}

	BeforeEach(func() {
		logOutput = &bytes.Buffer{}
		logger = slog.New(slog.NewJSONHandler(logOutput, nil))
		handler = newHandler(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"message": "ok"}`))
		})
	})

	It("should log request and response", func() {
		req := httptest.NewRequest(http.MethodGet, "/departments?pageSize=5", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		Expect(logOutput.String()).To(ContainSubstring("incoming request"))
		Expect(logOutput.String()).To(ContainSubstring(`"path":"/departments"`))
		Expect(logOutput.String()).To(ContainSubstring(`"query":"pageSize=5"`))
		Expect(logOutput.String()).To(ContainSubstring("response"))
		Expect(logOutput.String()).To(ContainSubstring(`"status_code":200`))
	})

	It("should redact passwords in JSON bodies", func() {
		body := strings.NewReader(`{"email": "admin@example.com", "password": "s3cret"}`)
		req := httptest.NewRequest(http.MethodPost, "/token", body)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		Expect(logOutput.String()).NotTo(ContainSubstring("s3cret"))
		Expect(logOutput.String()).To(ContainSubstring("[REDACTED]"))
		Expect(logOutput.String()).To(ContainSubstring("admin@example.com"))
	})

	It("should redact the authorization header", func() {
		req := httptest.NewRequest(http.MethodGet, "/departments", nil)
		req.Header.Set("Authorization", "Bearer eyJtop.secret.token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		Expect(logOutput.String()).NotTo(ContainSubstring("eyJtop"))
		Expect(logOutput.String()).To(ContainSubstring("[REDACTED]"))
	})

	It("should drop non-JSON bodies mentioning credentials", func() {
		body := strings.NewReader("username=admin%40example.com&password=s3cret")
		req := httptest.NewRequest(http.MethodPost, "/token", body)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		Expect(logOutput.String()).NotTo(ContainSubstring("s3cret"))
	})

	It("should leave the request body readable for the next handler", func() {
		var seen string
		handler = newHandler(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			seen = string(b)
		})

		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name": "Security"}`))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		Expect(seen).To(Equal(`{"name": "Security"}`))
	})

	It("should pass the response through unchanged", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal(`{"message": "ok"}`))
	})

	It("should log client errors at warn level", func() {
		handler = newHandler(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})

		req := httptest.NewRequest(http.MethodPost, "/departments", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		Expect(logOutput.String()).To(ContainSubstring(`"level":"WARN"`))
		Expect(logOutput.String()).To(ContainSubstring(`"status_code":409`))
	})
})
