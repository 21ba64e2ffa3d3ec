package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type RoomService struct {
	DB     *gorm.DB
	Photos *PhotoService
}

func NewRoomService(db *gorm.DB, photos *PhotoService) *RoomService {
	return &RoomService{DB: db, Photos: photos}
}

func (s *RoomService) withPhotos(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Photos").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Room", "roomId", fmt.Sprint(roomID))
		}
		return nil, err
	}
	return &room, nil
}

// CreateRoom registers a room and stores its photos; new rooms always start
// AVAILABLE.
func (s *RoomService) CreateRoom(roomNumber, typeIndex, price string, headers []*multipart.FileHeader) (*models.Room, error) {
	roomType, err := models.RoomTypeFromIndex(typeIndex)
	if err != nil {
		return nil, err
	}
	amount, err := parsePrice("price", price)
	if err != nil {
		return nil, err
	}

	room := &models.Room{
		RoomNumber: roomNumber,
		RoomType:   roomType,
		Price:      amount,
		RoomStatus: models.RoomAvailable,
	}
	if err := s.DB.Create(room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &utils.ConflictError{Message: "A room with this number already exists!"}
		}
		return nil, err
	}
	if len(headers) > 0 {
		if _, err := s.Photos.AddPhotos(room.ID, headers); err != nil {
			return nil, err
		}
	}
	return s.withPhotos(room.ID)
}

func (s *RoomService) GetRoomByID(roomID uint) (*models.Room, error) {
	return s.withPhotos(roomID)
}

func (s *RoomService) GetRoomByNumber(roomNumber string) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Photos").Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Room", "roomNumber", roomNumber)
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) listWhere(query interface{}, args ...interface{}) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("Photos").Where(query, args...).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) GetAllByRoomType(typeIndex string) ([]models.Room, error) {
	roomType, err := models.RoomTypeFromIndex(typeIndex)
	if err != nil {
		return nil, err
	}
	return s.listWhere("room_type = ?", roomType)
}

func (s *RoomService) GetAllByRoomStatus(statusIndex string) ([]models.Room, error) {
	status, err := models.RoomStatusFromIndex(statusIndex)
	if err != nil {
		return nil, err
	}
	return s.listWhere("room_status = ?", status)
}

func (s *RoomService) GetAllByPriceBetween(minPrice, maxPrice string) ([]models.Room, error) {
	low, err := parsePrice("minPrice", minPrice)
	if err != nil {
		return nil, err
	}
	high, err := parsePrice("maxPrice", maxPrice)
	if err != nil {
		return nil, err
	}
	return s.listWhere("price BETWEEN ? AND ?", low, high)
}

// Columns the paginated listing may sort by.
var roomSortColumns = map[string]string{
	"roomId":     "id",
	"roomNumber": "room_number",
	"roomType":   "room_type",
	"price":      "price",
	"roomStatus": "room_status",
}

// GetAllRooms returns one page of rooms. Page numbers start at 0 and the
// sort direction is asc unless "desc" is requested.
func (s *RoomService) GetAllRooms(pageNumber, pageSize int, sortBy, sortDir string) (*RoomPageResponse, error) {
	if pageNumber < 0 {
		pageNumber = 0
	}
	if pageSize < 1 {
		pageSize = 10
	}
	column, ok := roomSortColumns[sortBy]
	if !ok {
		column = "id"
	}
	direction := "asc"
	if strings.EqualFold(sortDir, "desc") {
		direction = "desc"
	}

	var total int64
	if err := s.DB.Model(&models.Room{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var rooms []models.Room
	err := s.DB.Preload("Photos").
		Order(column + " " + direction).
		Offset(pageNumber * pageSize).
		Limit(pageSize).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &RoomPageResponse{
		Rooms:         RoomsToDTO(rooms),
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		IsLast:        pageNumber >= totalPages-1,
	}, nil
}

// UpdateRoom is the administrative edit path: it may set the status
// directly and replaces the photo set when new files are attached.
func (s *RoomService) UpdateRoom(roomID uint, roomNumber, typeIndex, price, statusIndex string, headers []*multipart.FileHeader) (*models.Room, error) {
	room, err := findRoom(s.DB, roomID)
	if err != nil {
		return nil, err
	}
	roomType, err := models.RoomTypeFromIndex(typeIndex)
	if err != nil {
		return nil, err
	}
	status, err := models.RoomStatusFromIndex(statusIndex)
	if err != nil {
		return nil, err
	}
	amount, err := parsePrice("price", price)
	if err != nil {
		return nil, err
	}

	room.RoomNumber = roomNumber
	room.RoomType = roomType
	room.Price = amount
	room.RoomStatus = status

	if err := s.DB.Save(room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &utils.ConflictError{Message: "A room with this number already exists!"}
		}
		return nil, err
	}
	if len(headers) > 0 {
		if _, err := s.Photos.ReplacePhotos(room.ID, headers); err != nil {
			return nil, err
		}
	}
	return s.withPhotos(room.ID)
}

// DeleteRoom cascades through the room's bookings, their dependent rows and
// the stored photos.
func (s *RoomService) DeleteRoom(roomID uint) error {
	room, err := findRoom(s.DB, roomID)
	if err != nil {
		return err
	}
	if err := s.Photos.deleteByRoom(room.ID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var bookingIDs []uint
		if err := tx.Model(&models.Booking{}).Where("room_id = ?", room.ID).Pluck("id", &bookingIDs).Error; err != nil {
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
		if err := tx.Where("current_room_id = ?", room.ID).Delete(&models.BookingHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, room.ID).Error
	})
}
