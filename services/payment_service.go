package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

// PaymentService records settlements. The amount is always derived from the
// pricing engine plus the booking's service usages.
type PaymentService struct {
	DB       *gorm.DB
	Bookings *BookingService
}

func NewPaymentService(db *gorm.DB, bookings *BookingService) *PaymentService {
	return &PaymentService{DB: db, Bookings: bookings}
}

func (s *PaymentService) find(paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Payment", "paymentId", fmt.Sprint(paymentID))
		}
		return nil, err
	}
	return &payment, nil
}

// amountDue is the stay price from the history replay plus the sum of the
// booking's service usage totals.
func (s *PaymentService) amountDue(tx *gorm.DB, bookingID uint) (decimal.Decimal, error) {
	stay, err := s.Bookings.finalTotalPrice(tx, bookingID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	var usages []models.ServiceUsage
	if err := tx.Where("booking_id = ?", bookingID).Find(&usages).Error; err != nil {
		return decimal.Decimal{}, err
	}
	total := stay
	for i := range usages {
		total = total.Add(usages[i].TotalPrice)
	}
	return total, nil
}

func (s *PaymentService) CreatePayment(bookingID uint, methodIndex, statusIndex string) (*models.Payment, error) {
	method, err := models.PaymentMethodFromIndex(methodIndex)
	if err != nil {
		return nil, err
	}
	status, err := models.PaymentStatusFromIndex(statusIndex)
	if err != nil {
		return nil, err
	}

	var payment *models.Payment
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := findBooking(tx, bookingID)
		if err != nil {
			return err
		}
		amount, err := s.amountDue(tx, booking.ID)
		if err != nil {
			return err
		}
		payment = &models.Payment{
			PaymentDate:   utils.Day(time.Now()),
			Amount:        amount,
			PaymentMethod: method,
			PaymentStatus: status,
			BookingID:     booking.ID,
		}
		if err := tx.Create(payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &utils.ConflictError{Message: "This booking already has a payment!"}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) GetAllPayments() ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *PaymentService) GetPaymentByID(paymentID uint) (*models.Payment, error) {
	return s.find(paymentID)
}

func (s *PaymentService) GetPaymentByBooking(bookingID uint) (*models.Payment, error) {
	if _, err := findBooking(s.DB, bookingID); err != nil {
		return nil, err
	}
	var payment models.Payment
	if err := s.DB.Where("booking_id = ?", bookingID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Payment", "bookingId", fmt.Sprint(bookingID))
		}
		return nil, err
	}
	return &payment, nil
}

// UpdatePayment re-resolves the method and status and recomputes the amount
// in case service usages changed since the payment was recorded.
func (s *PaymentService) UpdatePayment(paymentID uint, methodIndex, statusIndex string) (*models.Payment, error) {
	method, err := models.PaymentMethodFromIndex(methodIndex)
	if err != nil {
		return nil, err
	}
	status, err := models.PaymentStatusFromIndex(statusIndex)
	if err != nil {
		return nil, err
	}

	var payment *models.Payment
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		payment, err = s.find(paymentID)
		if err != nil {
			return err
		}
		amount, err := s.amountDue(tx, payment.BookingID)
		if err != nil {
			return err
		}
		payment.PaymentDate = utils.Day(time.Now())
		payment.Amount = amount
		payment.PaymentMethod = method
		payment.PaymentStatus = status
		return tx.Save(payment).Error
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) DeletePayment(paymentID uint) error {
	payment, err := s.find(paymentID)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Payment{}, payment.ID).Error
}
