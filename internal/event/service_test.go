package event_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	deviceDatamodel "pacs/internal/core/datamodel/device"
	employeeDatamodel "pacs/internal/core/datamodel/employee"
	eventDatamodel "pacs/internal/core/datamodel/event"
	"pacs/internal/event"
)

func TestEventService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Event Service Suite")
}

// MockEventRepository implements event.RepositoryAPI for testing
type MockEventRepository struct {
	events   []*eventDatamodel.Event
	failWith error
}

func (m *MockEventRepository) Create(evt *eventDatamodel.Event) error {
	if m.failWith != nil {
		return m.failWith
	}
	evt.ID = int64(len(m.events) + 1)
	m.events = append(m.events, evt)
	return nil
}

func (m *MockEventRepository) List(pageSize, startIndex int) ([]eventDatamodel.Event, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := make([]eventDatamodel.Event, 0)
	for _, evt := range m.events {
		result = append(result, *evt)
	}
	if startIndex > len(result) {
		startIndex = len(result)
	}
	end := startIndex + pageSize
	if end > len(result) {
		end = len(result)
	}
	return result[startIndex:end], nil
}

// MockEmployeeRepository implements event.EmployeeRepositoryAPI
type MockEmployeeRepository struct {
	byCard map[int64]*employeeDatamodel.Employee
}

func (m *MockEmployeeRepository) GetByCardID(cardID int64) (*employeeDatamodel.Employee, error) {
	return m.byCard[cardID], nil
}

// MockDeviceRepository implements event.DeviceRepositoryAPI
type MockDeviceRepository struct {
	byImei map[string]*deviceDatamodel.Device
}

func (m *MockDeviceRepository) GetByImei(imei string) (*deviceDatamodel.Device, error) {
	return m.byImei[imei], nil
}

// MockGrantRepository implements event.GrantRepositoryAPI
type MockGrantRepository struct {
	pairs map[[2]int64]bool
}

func (m *MockGrantRepository) Exists(employeeID, deviceID int64) (bool, error) {
	return m.pairs[[2]int64{employeeID, deviceID}], nil
}

var _ = Describe("Event Service", func() {
	var (
		mockEvents *MockEventRepository
		mockEmps   *MockEmployeeRepository
		mockDevs   *MockDeviceRepository
		mockGrants *MockGrantRepository
		service    *event.Service
		logger     *slog.Logger

		validEmployee   *employeeDatamodel.Employee
		expiredEmployee *employeeDatamodel.Employee
		closedDevice    *deviceDatamodel.Device
		openedDevice    *deviceDatamodel.Device
	)

	BeforeEach(func() {
		y, m, d := time.Now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

		validEmployee = &employeeDatamodel.Employee{
			ID:             1,
			Name:           "Anna",
			Surname:        "Karenina",
			CardID:         11111111,
			CardStartDate:  today.AddDate(0, -1, 0),
			CardFinishDate: today.AddDate(0, 1, 0),
		}
		expiredEmployee = &employeeDatamodel.Employee{
			ID:             2,
			Name:           "Fedor",
			Surname:        "Dostoevskyi",
			CardID:         2222222,
			CardStartDate:  today.AddDate(0, -2, 0),
			CardFinishDate: today.AddDate(0, 0, -1),
		}
		closedDevice = &deviceDatamodel.Device{
			ID:    1,
			Name:  "Front door",
			Imei:  "111111qwerty",
			Route: deviceDatamodel.RouteEnter,
		}
		openedDevice = &deviceDatamodel.Device{
			ID:     2,
			Name:   "Lobby gate",
			Imei:   "222222qwerty",
			Route:  deviceDatamodel.RouteEnter,
			Opened: true,
		}

		mockEvents = &MockEventRepository{}
		mockEmps = &MockEmployeeRepository{byCard: map[int64]*employeeDatamodel.Employee{
			validEmployee.CardID:   validEmployee,
			expiredEmployee.CardID: expiredEmployee,
		}}
		mockDevs = &MockDeviceRepository{byImei: map[string]*deviceDatamodel.Device{
			closedDevice.Imei: closedDevice,
			openedDevice.Imei: openedDevice,
		}}
		mockGrants = &MockGrantRepository{pairs: make(map[[2]int64]bool)}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = event.NewService(mockEvents, mockEmps, mockDevs, mockGrants, logger)
	})

	Describe("CheckEntry", func() {
		Context("when the card is unknown", func() {
			It("should prohibit and record an event with no references", func() {
				resp, err := service.CheckEntry(99999999, closedDevice.Imei)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Entry).To(Equal(event.EntryProhibited))

				Expect(mockEvents.events).To(HaveLen(1))
				evt := mockEvents.events[0]
				Expect(evt.Success).To(BeFalse())
				Expect(evt.EmployeeID).To(BeNil())
				Expect(evt.DeviceID).To(BeNil())
			})
		})

		Context("when the card has expired", func() {
			It("should prohibit and record only the employee", func() {
				resp, err := service.CheckEntry(expiredEmployee.CardID, closedDevice.Imei)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Entry).To(Equal(event.EntryProhibited))

				Expect(mockEvents.events).To(HaveLen(1))
				evt := mockEvents.events[0]
				Expect(evt.Success).To(BeFalse())
				Expect(evt.EmployeeID).To(HaveValue(Equal(expiredEmployee.ID)))
				Expect(evt.DeviceID).To(BeNil())
			})

			It("should not consult grants for an expired card", func() {
				mockGrants.pairs[[2]int64{expiredEmployee.ID, closedDevice.ID}] = true

				resp, err := service.CheckEntry(expiredEmployee.CardID, closedDevice.Imei)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Entry).To(Equal(event.EntryProhibited))
			})
		})

		Context("when the reader is unknown", func() {
			It("should prohibit and record only the employee", func() {
				resp, err := service.CheckEntry(validEmployee.CardID, "no-such-imei")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Entry).To(Equal(event.EntryProhibited))

				Expect(mockEvents.events).To(HaveLen(1))
				evt := mockEvents.events[0]
				Expect(evt.Success).To(BeFalse())
				Expect(evt.EmployeeID).To(HaveValue(Equal(validEmployee.ID)))
				Expect(evt.DeviceID).To(BeNil())
			})
		})

		Context("when the reader is held open", func() {
			It("should permit without a grant and record both references", func() {
				resp, err := service.CheckEntry(validEmployee.CardID, openedDevice.Imei)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Entry).To(Equal(event.EntryPermitted))

				Expect(mockEvents.events).To(HaveLen(1))
				evt := mockEvents.events[0]
				Expect(evt.Success).To(BeTrue())
				Expect(evt.EmployeeID).To(HaveValue(Equal(validEmployee.ID)))
				Expect(evt.DeviceID).To(HaveValue(Equal(openedDevice.ID)))
			})
		})

		Context("when grants decide", func() {
			It("should permit a granted employee", func() {
				mockGrants.pairs[[2]int64{validEmployee.ID, closedDevice.ID}] = true

				resp, err := service.CheckEntry(validEmployee.CardID, closedDevice.Imei)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Entry).To(Equal(event.EntryPermitted))

				evt := mockEvents.events[0]
				Expect(evt.Success).To(BeTrue())
				Expect(evt.EmployeeID).To(HaveValue(Equal(validEmployee.ID)))
				Expect(evt.DeviceID).To(HaveValue(Equal(closedDevice.ID)))
			})

			It("should prohibit an ungranted employee but keep both references", func() {
				resp, err := service.CheckEntry(validEmployee.CardID, closedDevice.Imei)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Entry).To(Equal(event.EntryProhibited))

				evt := mockEvents.events[0]
				Expect(evt.Success).To(BeFalse())
				Expect(evt.EmployeeID).To(HaveValue(Equal(validEmployee.ID)))
				Expect(evt.DeviceID).To(HaveValue(Equal(closedDevice.ID)))
			})
		})

		It("should write exactly one event per attempt", func() {
			_, err := service.CheckEntry(validEmployee.CardID, openedDevice.Imei)
			Expect(err).NotTo(HaveOccurred())
			_, err = service.CheckEntry(99999999, closedDevice.Imei)
			Expect(err).NotTo(HaveOccurred())

			Expect(mockEvents.events).To(HaveLen(2))
		})

		Context("when the audit write fails", func() {
			BeforeEach(func() {
				mockEvents.failWith = errors.New("disk full")
			})

			It("should return an error instead of a decision", func() {
				resp, err := service.CheckEntry(validEmployee.CardID, openedDevice.Imei)
				Expect(err).To(HaveOccurred())
				Expect(resp.Entry).To(BeEmpty())
			})
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			for i := 0; i < 3; i++ {
				_, err := service.CheckEntry(validEmployee.CardID, openedDevice.Imei)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should page through recorded attempts in order", func() {
			events, err := service.List(2, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(2))
			Expect(events[0].ID).To(Equal(int64(1)))
			Expect(events[1].ID).To(Equal(int64(2)))
		})

		It("should return the remainder on the last page", func() {
			events, err := service.List(10, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(1))
		})
	})
})
