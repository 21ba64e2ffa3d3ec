package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func findCustomer(tx *gorm.DB, customerID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := tx.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Customer", "customerId", fmt.Sprint(customerID))
		}
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	if err := s.DB.Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &utils.ConflictError{Message: "A customer with this email or phone number already exists!"}
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) GetCustomerByID(customerID uint) (*models.Customer, error) {
	return findCustomer(s.DB, customerID)
}

func (s *CustomerService) GetCustomerByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Customer", "email", email)
		}
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) GetCustomerByPhoneNumber(phoneNumber string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.Where("phone_number = ?", phoneNumber).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Customer", "phoneNumber", phoneNumber)
		}
		return nil, err
	}
	return &customer, nil
}

// GetAllByName matches the keyword against first and last names.
func (s *CustomerService) GetAllByName(keyword string) ([]models.Customer, error) {
	var customers []models.Customer
	pattern := "%" + keyword + "%"
	if err := s.DB.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) UpdateCustomer(customerID uint, updated *models.Customer) (*models.Customer, error) {
	customer, err := findCustomer(s.DB, customerID)
	if err != nil {
		return nil, err
	}

	customer.FirstName = updated.FirstName
	customer.LastName = updated.LastName
	customer.Email = updated.Email
	customer.PhoneNumber = updated.PhoneNumber
	customer.Address = updated.Address

	if err := s.DB.Save(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &utils.ConflictError{Message: "A customer with this email or phone number already exists!"}
		}
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer cascades through the customer's bookings and their
// dependent rows.
func (s *CustomerService) DeleteCustomer(customerID uint) error {
	customer, err := findCustomer(s.DB, customerID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var bookingIDs []uint
		if err := tx.Model(&models.Booking{}).Where("customer_id = ?", customer.ID).Pluck("id", &bookingIDs).Error; err != nil {
			return err
		}
		if len(bookingIDs) > 0 {
			if err := tx.Where("booking_id IN ?", bookingIDs).Delete(&models.BookingHistory{}).Error; err != nil {
				return err
			}
			if err := tx.Where("booking_id IN ?", bookingIDs).Delete(&models.ServiceUsage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("booking_id IN ?", bookingIDs).Delete(&models.Payment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", bookingIDs).Delete(&models.Booking{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Customer{}, customer.ID).Error
	})
}
