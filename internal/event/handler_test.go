package event_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	deviceDatamodel "pacs/internal/core/datamodel/device"
	employeeDatamodel "pacs/internal/core/datamodel/employee"
	"pacs/internal/event"
	"pacs/internal/transport"
)

var _ = Describe("Event Handler", func() {
	var (
		mockEvents *MockEventRepository
		service    *event.Service
		handler    *event.Handler
		router     chi.Router
	)

	BeforeEach(func() {
		y, m, d := time.Now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

		emp := &employeeDatamodel.Employee{
			ID:             1,
			Name:           "Anna",
			Surname:        "Karenina",
			CardID:         11111111,
			CardStartDate:  today.AddDate(0, -1, 0),
			CardFinishDate: today.AddDate(0, 1, 0),
		}
		dev := &deviceDatamodel.Device{
			ID:    1,
			Name:  "Front door",
			Imei:  "111111qwerty",
			Route: deviceDatamodel.RouteEnter,
		}

		mockEvents = &MockEventRepository{}
		mockEmps := &MockEmployeeRepository{byCard: map[int64]*employeeDatamodel.Employee{emp.CardID: emp}}
		mockDevs := &MockDeviceRepository{byImei: map[string]*deviceDatamodel.Device{dev.Imei: dev}}
		mockGrants := &MockGrantRepository{pairs: map[[2]int64]bool{{emp.ID, dev.ID}: true}}

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = event.NewService(mockEvents, mockEmps, mockDevs, mockGrants, slogger)
		handler = event.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Get("/drop_in/{cardID}/{imei}", handler.DropIn)
		router.Get("/events", handler.List)
	})

	Describe("DropIn", func() {
		It("should answer 200 with the permitted payload", func() {
			req := httptest.NewRequest(http.MethodGet, "/drop_in/11111111/111111qwerty", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp event.EntryResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Entry).To(Equal(event.EntryPermitted))
		})

		It("should answer 200 with the prohibited payload for an unknown card", func() {
			req := httptest.NewRequest(http.MethodGet, "/drop_in/99999999/111111qwerty", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp event.EntryResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Entry).To(Equal(event.EntryProhibited))
		})

		It("should answer 400 for a non-numeric card", func() {
			req := httptest.NewRequest(http.MethodGet, "/drop_in/notacard/111111qwerty", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(mockEvents.events).To(BeEmpty())
		})
	})

	Describe("List", func() {
		It("should return recorded attempts", func() {
			req := httptest.NewRequest(http.MethodGet, "/drop_in/11111111/111111qwerty", nil)
			router.ServeHTTP(httptest.NewRecorder(), req)

			req = httptest.NewRequest(http.MethodGet, "/events", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var events []map[string]interface{}
			Expect(json.NewDecoder(w.Body).Decode(&events)).To(Succeed())
			Expect(events).To(HaveLen(1))
			Expect(events[0]["success"]).To(Equal(true))
		})
	})
})
