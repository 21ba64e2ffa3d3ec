package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

// ServiceService manages the billable service catalog.
type ServiceService struct {
	DB *gorm.DB
}

func NewServiceService(db *gorm.DB) *ServiceService {
	return &ServiceService{DB: db}
}

func parsePrice(field, raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Decimal{}, &utils.ValidationError{
			Message: "One or more fields are not valid!",
			Fields:  map[string]string{field: "must be a non-negative decimal number"},
		}
	}
	return price, nil
}

func (s *ServiceService) CreateService(name, description, price string) (*models.Service, error) {
	amount, err := parsePrice("price", price)
	if err != nil {
		return nil, err
	}
	service := &models.Service{
		ServiceName: name,
		Description: description,
		Price:       amount,
	}
	if err := s.DB.Create(service).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &utils.ConflictError{Message: "A service with this name already exists!"}
		}
		return nil, err
	}
	return service, nil
}

func (s *ServiceService) GetAllServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.DB.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *ServiceService) GetServiceByID(serviceID uint) (*models.Service, error) {
	return findService(s.DB, serviceID)
}

func (s *ServiceService) GetServiceByName(name string) (*models.Service, error) {
	var service models.Service
	if err := s.DB.Where("service_name = ?", name).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Service", "serviceName", name)
		}
		return nil, err
	}
	return &service, nil
}

func (s *ServiceService) GetAllByPriceBetween(minPrice, maxPrice string) ([]models.Service, error) {
	low, err := parsePrice("minPrice", minPrice)
	if err != nil {
		return nil, err
	}
	high, err := parsePrice("maxPrice", maxPrice)
	if err != nil {
		return nil, err
	}
	var services []models.Service
	if err := s.DB.Where("price BETWEEN ? AND ?", low, high).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *ServiceService) UpdateService(serviceID uint, name, description, price string) (*models.Service, error) {
	service, err := findService(s.DB, serviceID)
	if err != nil {
		return nil, err
	}
	amount, err := parsePrice("price", price)
	if err != nil {
		return nil, err
	}

	service.ServiceName = name
	service.Description = description
	service.Price = amount

	if err := s.DB.Save(service).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &utils.ConflictError{Message: "A service with this name already exists!"}
		}
		return nil, err
	}
	return service, nil
}

// DeleteService removes the catalog entry and its recorded usages.
func (s *ServiceService) DeleteService(serviceID uint) error {
	service, err := findService(s.DB, serviceID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServiceUsage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, service.ID).Error
	})
}
