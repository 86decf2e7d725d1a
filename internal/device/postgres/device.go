package postgres

import (
	"errors"

	"gorm.io/gorm"

	deviceDatamodel "pacs/internal/core/datamodel/device"
	"pacs/internal/device"
	"pacs/internal/repository"
)

type DeviceRepository struct {
	*repository.Repository[deviceDatamodel.Device]
}

func NewDeviceRepository(db *gorm.DB) device.RepositoryAPI {
	return &DeviceRepository{
		Repository: repository.New[deviceDatamodel.Device](db),
	}
}

// GetByImei resolves the reader a card was presented at. A missing
// device is not an error here.
func (r *DeviceRepository) GetByImei(imei string) (*deviceDatamodel.Device, error) {
	var dev deviceDatamodel.Device
	err := r.DB().Where("imei = ?", imei).First(&dev).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dev, nil
}
