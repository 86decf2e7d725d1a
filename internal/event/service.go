package event

import (
	"log/slog"
	"time"

	"pacs/internal"
	eventDatamodel "pacs/internal/core/datamodel/event"
)

// Service is the authorization engine: it decides entry attempts and
// records every one of them, allowed or not, as exactly one Event.
type Service struct {
	events    RepositoryAPI
	employees EmployeeRepositoryAPI
	devices   DeviceRepositoryAPI
	grants    GrantRepositoryAPI
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(events RepositoryAPI, employees EmployeeRepositoryAPI, devices DeviceRepositoryAPI, grants GrantRepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		events:    events,
		employees: employees,
		devices:   devices,
		grants:    grants,
		logger:    logger,
		now:       time.Now,
	}
}

// CheckEntry runs the entry decision for a card presented at a reader.
// The audit event is written before the decision is returned; if the
// write fails the caller gets no decision at all.
func (s *Service) CheckEntry(cardID int64, imei string) (EntryResponse, error) {
	dec, err := s.decide(cardID, imei)
	if err != nil {
		s.logger.Error("entry decision failed", "card_id", cardID, "imei", imei, "error", err)
		return EntryResponse{}, internal.NewInternalError("failed to decide entry", err)
	}

	evt := &eventDatamodel.Event{
		EmployeeID: dec.employeeID,
		DeviceID:   dec.deviceID,
		CreatedAt:  s.now(),
		Success:    dec.success,
	}
	if err := s.events.Create(evt); err != nil {
		s.logger.Error("failed to record entry event", "card_id", cardID, "imei", imei, "error", err)
		return EntryResponse{}, internal.NewInternalError("failed to record entry event", err)
	}

	s.logger.Info("entry attempt",
		"card_id", cardID, "imei", imei, "success", dec.success, "event_id", evt.ID)

	if dec.success {
		return EntryResponse{Entry: EntryPermitted}, nil
	}
	return EntryResponse{Entry: EntryProhibited}, nil
}

// decide applies five ordered rules; the first match wins:
//  1. unknown card          -> deny, no references
//  2. card expired          -> deny, employee only
//  3. unknown reader        -> deny, employee only
//  4. reader held open      -> allow regardless of grants
//  5. grant membership      -> allow if granted, deny otherwise
func (s *Service) decide(cardID int64, imei string) (decision, error) {
	emp, err := s.employees.GetByCardID(cardID)
	if err != nil {
		return decision{}, err
	}
	if emp == nil {
		return decision{}, nil
	}

	if emp.CardExpired(s.now()) {
		return decision{employeeID: &emp.ID}, nil
	}

	dev, err := s.devices.GetByImei(imei)
	if err != nil {
		return decision{}, err
	}
	if dev == nil {
		return decision{employeeID: &emp.ID}, nil
	}

	if dev.Opened {
		return decision{success: true, employeeID: &emp.ID, deviceID: &dev.ID}, nil
	}

	granted, err := s.grants.Exists(emp.ID, dev.ID)
	if err != nil {
		return decision{}, err
	}
	return decision{success: granted, employeeID: &emp.ID, deviceID: &dev.ID}, nil
}

// List pages through the audit trail in insertion order.
func (s *Service) List(pageSize, startIndex int) ([]eventDatamodel.Event, error) {
	events, err := s.events.List(pageSize, startIndex)
	if err != nil {
		s.logger.Error("failed to list events", "error", err)
		return nil, internal.NewInternalError("failed to list events", err)
	}
	return events, nil
}
