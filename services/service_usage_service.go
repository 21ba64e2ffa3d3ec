package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type ServiceUsageService struct {
	DB *gorm.DB
}

func NewServiceUsageService(db *gorm.DB) *ServiceUsageService {
	return &ServiceUsageService{DB: db}
}

func findService(tx *gorm.DB, serviceID uint) (*models.Service, error) {
	var service models.Service
	if err := tx.First(&service, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Service", "serviceId", fmt.Sprint(serviceID))
		}
		return nil, err
	}
	return &service, nil
}

func (s *ServiceUsageService) find(serviceUsageID uint) (*models.ServiceUsage, error) {
	var usage models.ServiceUsage
	if err := s.DB.Preload("Service").First(&usage, serviceUsageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("ServiceUsage", "serviceUsageId", fmt.Sprint(serviceUsageID))
		}
		return nil, err
	}
	return &usage, nil
}

// usageWindow parses the start/end pair and checks ordering (start may
// equal end) plus containment in the booking's stay window.
func usageWindow(booking *models.Booking, startDate, endDate string) (datatypes.Date, datatypes.Date, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return datatypes.Date{}, datatypes.Date{}, err
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return datatypes.Date{}, datatypes.Date{}, err
	}
	if utils.DateAfter(start, end) {
		return datatypes.Date{}, datatypes.Date{}, &utils.DateOrderError{Message: "The start date cannot be after the end date!"}
	}
	if utils.DateBefore(start, booking.CheckInDate) || utils.DateAfter(end, booking.CheckOutDate) {
		return datatypes.Date{}, datatypes.Date{}, &utils.DateOrderError{Message: "Start and end dates cannot be outside of check-in and check-out times!"}
	}
	return start, end, nil
}

// CreateServiceUsage attaches a service to an active booking; the total
// price is computed here, never taken from the request.
func (s *ServiceUsageService) CreateServiceUsage(bookingID, serviceID uint, numOfUsers int, startDate, endDate, voucher string) (*models.ServiceUsage, error) {
	booking, err := findBooking(s.DB, bookingID)
	if err != nil {
		return nil, err
	}
	service, err := findService(s.DB, serviceID)
	if err != nil {
		return nil, err
	}

	if booking.BookingStatus != models.BookingConfirmed && booking.BookingStatus != models.BookingCheckedIn {
		return nil, &utils.BookingStatusError{Message: "This booking has not been confirmed or checked-in!"}
	}

	start, end, err := usageWindow(booking, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if numOfUsers < 1 {
		return nil, &utils.ValidationError{
			Message: "One or more fields are not valid!",
			Fields:  map[string]string{"numOfUsers": "must be at least 1"},
		}
	}
	discount, err := parseVoucher("serviceVoucher", voucher)
	if err != nil {
		return nil, err
	}

	usage := &models.ServiceUsage{
		NumOfUsers:     numOfUsers,
		StartDate:      start,
		EndDate:        end,
		ServiceVoucher: discount,
		ServiceID:      service.ID,
		BookingID:      booking.ID,
		Service:        *service,
	}
	usage.TotalPrice = usage.CalculateTotalPrice()

	if err := s.DB.Create(usage).Error; err != nil {
		return nil, err
	}
	return s.find(usage.ID)
}

func (s *ServiceUsageService) GetAllServiceUsages() ([]models.ServiceUsage, error) {
	var usages []models.ServiceUsage
	if err := s.DB.Preload("Service").Find(&usages).Error; err != nil {
		return nil, err
	}
	return usages, nil
}

func (s *ServiceUsageService) GetServiceUsageByID(serviceUsageID uint) (*models.ServiceUsage, error) {
	return s.find(serviceUsageID)
}

func (s *ServiceUsageService) listWhere(query interface{}, args ...interface{}) ([]models.ServiceUsage, error) {
	var usages []models.ServiceUsage
	if err := s.DB.Preload("Service").Where(query, args...).Find(&usages).Error; err != nil {
		return nil, err
	}
	return usages, nil
}

func (s *ServiceUsageService) GetAllByNumOfUsers(numOfUsers int) ([]models.ServiceUsage, error) {
	return s.listWhere("num_of_users = ?", numOfUsers)
}

func (s *ServiceUsageService) GetAllByStartDate(startDate string) ([]models.ServiceUsage, error) {
	day, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	return s.listWhere("start_date = ?", day)
}

func (s *ServiceUsageService) GetAllByEndDate(endDate string) ([]models.ServiceUsage, error) {
	day, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	return s.listWhere("end_date = ?", day)
}

func (s *ServiceUsageService) GetAllByServiceVoucher(voucher string) ([]models.ServiceUsage, error) {
	discount, err := parseVoucher("serviceVoucher", voucher)
	if err != nil {
		return nil, err
	}
	return s.listWhere("service_voucher = ?", discount)
}

func (s *ServiceUsageService) GetAllByPriceBetween(minPrice, maxPrice string) ([]models.ServiceUsage, error) {
	low, err := decimal.NewFromString(minPrice)
	if err != nil {
		return nil, &utils.ValidationError{
			Message: "One or more fields are not valid!",
			Fields:  map[string]string{"minPrice": "must be a decimal number"},
		}
	}
	high, err := decimal.NewFromString(maxPrice)
	if err != nil {
		return nil, &utils.ValidationError{
			Message: "One or more fields are not valid!",
			Fields:  map[string]string{"maxPrice": "must be a decimal number"},
		}
	}
	return s.listWhere("total_price BETWEEN ? AND ?", low, high)
}

func (s *ServiceUsageService) GetAllByService(serviceID uint) ([]models.ServiceUsage, error) {
	if _, err := findService(s.DB, serviceID); err != nil {
		return nil, err
	}
	return s.listWhere("service_id = ?", serviceID)
}

func (s *ServiceUsageService) GetAllByBooking(bookingID uint) ([]models.ServiceUsage, error) {
	if _, err := findBooking(s.DB, bookingID); err != nil {
		return nil, err
	}
	return s.listWhere("booking_id = ?", bookingID)
}

// TotalServicePriceOfBooking sums the stored usage totals for a booking.
func (s *ServiceUsageService) TotalServicePriceOfBooking(bookingID uint) (decimal.Decimal, error) {
	if _, err := findBooking(s.DB, bookingID); err != nil {
		return decimal.Decimal{}, err
	}
	usages, err := s.listWhere("booking_id = ?", bookingID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	total := decimal.Zero
	for i := range usages {
		total = total.Add(usages[i].TotalPrice)
	}
	return total, nil
}

func (s *ServiceUsageService) UpdateServiceUsage(serviceUsageID, bookingID, serviceID uint, numOfUsers int, startDate, endDate, voucher string) (*models.ServiceUsage, error) {
	usage, err := s.find(serviceUsageID)
	if err != nil {
		return nil, err
	}
	booking, err := findBooking(s.DB, bookingID)
	if err != nil {
		return nil, err
	}
	service, err := findService(s.DB, serviceID)
	if err != nil {
		return nil, err
	}

	start, end, err := usageWindow(booking, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if numOfUsers < 1 {
		return nil, &utils.ValidationError{
			Message: "One or more fields are not valid!",
			Fields:  map[string]string{"numOfUsers": "must be at least 1"},
		}
	}
	discount, err := parseVoucher("serviceVoucher", voucher)
	if err != nil {
		return nil, err
	}

	usage.NumOfUsers = numOfUsers
	usage.StartDate = start
	usage.EndDate = end
	usage.ServiceVoucher = discount
	usage.ServiceID = service.ID
	usage.BookingID = booking.ID
	usage.Service = *service
	usage.TotalPrice = usage.CalculateTotalPrice()

	if err := s.DB.Save(usage).Error; err != nil {
		return nil, err
	}
	return s.find(usage.ID)
}

func (s *ServiceUsageService) DeleteServiceUsage(serviceUsageID uint) error {
	usage, err := s.find(serviceUsageID)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.ServiceUsage{}, usage.ID).Error
}
