package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

// BookingHistoryService is the read/reporting surface over the ledger plus
// the administrative correction path. Regular lifecycle appends never go
// through here; they happen inside BookingService transactions.
type BookingHistoryService struct {
	DB *gorm.DB
}

func NewBookingHistoryService(db *gorm.DB) *BookingHistoryService {
	return &BookingHistoryService{DB: db}
}

func (s *BookingHistoryService) find(bookHistoryID uint) (*models.BookingHistory, error) {
	var entry models.BookingHistory
	if err := s.DB.Preload("Room").First(&entry, bookHistoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Booking history", "bookHistoryId", fmt.Sprint(bookHistoryID))
		}
		return nil, err
	}
	return &entry, nil
}

func (s *BookingHistoryService) list(query *gorm.DB) ([]models.BookingHistory, error) {
	var entries []models.BookingHistory
	if err := query.Preload("Room").Order("booking_id, seq").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *BookingHistoryService) GetAll() ([]models.BookingHistory, error) {
	return s.list(s.DB)
}

func (s *BookingHistoryService) GetByID(bookHistoryID uint) (*models.BookingHistory, error) {
	return s.find(bookHistoryID)
}

func (s *BookingHistoryService) GetAllByActualCheckInDate(date string) ([]models.BookingHistory, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.list(s.DB.Where("actual_check_in_date = ?", day))
}

func (s *BookingHistoryService) GetAllByActualCheckOutDate(date string) ([]models.BookingHistory, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.list(s.DB.Where("actual_check_out_date = ?", day))
}

func (s *BookingHistoryService) GetAllByHistoryType(typeIndex string) ([]models.BookingHistory, error) {
	historyType, err := models.HistoryTypeFromIndex(typeIndex)
	if err != nil {
		return nil, err
	}
	return s.list(s.DB.Where("history_type = ?", historyType))
}

func (s *BookingHistoryService) GetAllByNote(keyword string) ([]models.BookingHistory, error) {
	return s.list(s.DB.Where("note LIKE ?", "%"+keyword+"%"))
}

func (s *BookingHistoryService) GetAllByChangeDate(date string) ([]models.BookingHistory, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.list(s.DB.Where("change_date = ?", day))
}

func (s *BookingHistoryService) GetAllByPriceBetween(minPrice, maxPrice string) ([]models.BookingHistory, error) {
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
	return s.list(s.DB.Where("final_total_price BETWEEN ? AND ?", low, high))
}

func (s *BookingHistoryService) GetAllByBooking(bookingID uint) ([]models.BookingHistory, error) {
	if _, err := findBooking(s.DB, bookingID); err != nil {
		return nil, err
	}
	return s.list(s.DB.Where("booking_id = ?", bookingID))
}

func (s *BookingHistoryService) GetAllByRoom(roomID uint) ([]models.BookingHistory, error) {
	if _, err := findRoom(s.DB, roomID); err != nil {
		return nil, err
	}
	return s.list(s.DB.Where("current_room_id = ?", roomID))
}

// UpdateBookingHistory is the administrative correction path; the ledger
// is otherwise immutable.
func (s *BookingHistoryService) UpdateBookingHistory(bookHistoryID uint, actualCheckIn, actualCheckOut, typeIndex, note, changeDate, finalTotalPrice string) (*models.BookingHistory, error) {
	entry, err := s.find(bookHistoryID)
	if err != nil {
		return nil, err
	}

	in, err := utils.ParseDate(actualCheckIn)
	if err != nil {
		return nil, err
	}
	out, err := utils.ParseDate(actualCheckOut)
	if err != nil {
		return nil, err
	}
	historyType, err := models.HistoryTypeFromIndex(typeIndex)
	if err != nil {
		return nil, err
	}

	entry.ActualCheckInDate = in
	entry.ActualCheckOutDate = out
	entry.HistoryType = historyType
	entry.Note = note

	if changeDate != "" {
		day, err := utils.ParseDate(changeDate)
		if err != nil {
			return nil, err
		}
		entry.ChangeDate = &day
	}
	if finalTotalPrice != "" {
		price, err := decimal.NewFromString(finalTotalPrice)
		if err != nil || price.IsNegative() {
			return nil, &utils.ValidationError{
				Message: "One or more fields are not valid!",
				Fields:  map[string]string{"finalTotalPrice": "must be a non-negative decimal number"},
			}
		}
		entry.FinalTotalPrice = decimal.NewNullDecimal(price)
	}

	if err := s.DB.Save(entry).Error; err != nil {
		return nil, err
	}
	return s.find(bookHistoryID)
}

func (s *BookingHistoryService) DeleteBookingHistory(bookHistoryID uint) error {
	entry, err := s.find(bookHistoryID)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.BookingHistory{}, entry.ID).Error
}
