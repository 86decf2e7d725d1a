package department_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	departmentDatamodel "pacs/internal/core/datamodel/department"
	"pacs/internal/department"
	departmentPostgres "pacs/internal/department/postgres"
	"pacs/internal/transport"
)

var _ = Describe("Department Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    department.RepositoryAPI
		service *department.Service
		handler *department.Handler
		router  chi.Router
		slogger *slog.Logger
	)

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&departmentDatamodel.Department{})
		Expect(err).NotTo(HaveOccurred())

		repo = departmentPostgres.NewDepartmentRepository(db)
		service = department.NewService(repo, slogger)
		handler = department.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Get("/departments", handler.List)
		router.Post("/departments", handler.Create)
		router.Get("/departments/{departmentID}", handler.Get)
		router.Patch("/departments/{departmentID}", handler.Update)
		router.Delete("/departments/{departmentID}", handler.Delete)

		for _, name := range []string{"Security", "Accounting"} {
			err := repo.Create(&departmentDatamodel.Department{Name: name})
			Expect(err).NotTo(HaveOccurred())
		}
	})

	It("should list departments", func() {
		req := httptest.NewRequest(http.MethodGet, "/departments", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var depts []departmentDatamodel.Department
		Expect(json.NewDecoder(w.Body).Decode(&depts)).To(Succeed())
		Expect(depts).To(HaveLen(2))
	})

	It("should honor pagination query parameters", func() {
		req := httptest.NewRequest(http.MethodGet, "/departments?pageSize=1&startIndex=1", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var depts []departmentDatamodel.Department
		Expect(json.NewDecoder(w.Body).Decode(&depts)).To(Succeed())
		Expect(depts).To(HaveLen(1))
		Expect(depts[0].Name).To(Equal("Accounting"))
	})

	It("should create a department", func() {
		body := strings.NewReader(`{"name": "Research"}`)
		req := httptest.NewRequest(http.MethodPost, "/departments", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var dept departmentDatamodel.Department
		Expect(json.NewDecoder(w.Body).Decode(&dept)).To(Succeed())
		Expect(dept.ID).To(BeNumerically(">", 0))
		Expect(dept.Name).To(Equal("Research"))
	})

	It("should answer 409 for a duplicate name", func() {
		body := strings.NewReader(`{"name": "Security"}`)
		req := httptest.NewRequest(http.MethodPost, "/departments", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("should get a department by id", func() {
		req := httptest.NewRequest(http.MethodGet, "/departments/1", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var dept departmentDatamodel.Department
		Expect(json.NewDecoder(w.Body).Decode(&dept)).To(Succeed())
		Expect(dept.Name).To(Equal("Security"))
	})

	It("should answer 400 for a missing department", func() {
		req := httptest.NewRequest(http.MethodGet, "/departments/42", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should answer 400 for a malformed id", func() {
		req := httptest.NewRequest(http.MethodGet, "/departments/abc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should update a department", func() {
		body := strings.NewReader(`{"name": "Physical Security"}`)
		req := httptest.NewRequest(http.MethodPatch, "/departments/1", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var dept departmentDatamodel.Department
		Expect(json.NewDecoder(w.Body).Decode(&dept)).To(Succeed())
		Expect(dept.Name).To(Equal("Physical Security"))
	})

	It("should delete a department with 204", func() {
		req := httptest.NewRequest(http.MethodDelete, "/departments/1", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))

		req = httptest.NewRequest(http.MethodGet, "/departments/1", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
