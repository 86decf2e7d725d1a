package postgres

import (
	"gorm.io/gorm"

	eventDatamodel "pacs/internal/core/datamodel/event"
	"pacs/internal/event"
	"pacs/internal/repository"
)

type EventRepository struct {
	*repository.Repository[eventDatamodel.Event]
}

func NewEventRepository(db *gorm.DB) event.RepositoryAPI {
	return &EventRepository{
		Repository: repository.New[eventDatamodel.Event](db),
	}
}
