package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

// maxPhotosPerRoom caps how many images a room listing may carry.
const maxPhotosPerRoom = 5

type PhotoService struct {
	DB    *gorm.DB
	Files *FileService
}

func NewPhotoService(db *gorm.DB, files *FileService) *PhotoService {
	return &PhotoService{DB: db, Files: files}
}

func (s *PhotoService) find(photoID uint) (*models.Photo, error) {
	var photo models.Photo
	if err := s.DB.First(&photo, photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Photo", "photoId", fmt.Sprint(photoID))
		}
		return nil, err
	}
	return &photo, nil
}

// AddPhotos stores the uploads and attaches them to the room, enforcing the
// per-room cap across existing and new photos.
func (s *PhotoService) AddPhotos(roomID uint, headers []*multipart.FileHeader) ([]models.Photo, error) {
	room, err := findRoom(s.DB, roomID)
	if err != nil {
		return nil, err
	}

	var existing int64
	if err := s.DB.Model(&models.Photo{}).Where("room_id = ?", room.ID).Count(&existing).Error; err != nil {
		return nil, err
	}
	if int(existing)+len(headers) > maxPhotosPerRoom {
		return nil, &utils.ValidationError{
			Message: "One or more fields are not valid!",
			Fields:  map[string]string{"photos": fmt.Sprintf("a room can have at most %d photos", maxPhotosPerRoom)},
		}
	}

	photos := make([]models.Photo, 0, len(headers))
	for _, header := range headers {
		name, err := s.Files.SaveFile(header)
		if err != nil {
			return nil, err
		}
		photos = append(photos, models.Photo{Name: name, RoomID: room.ID})
	}
	if len(photos) == 0 {
		return photos, nil
	}
	if err := s.DB.Create(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *PhotoService) GetAllPhotos() ([]models.Photo, error) {
	var photos []models.Photo
	if err := s.DB.Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *PhotoService) GetPhotoByID(photoID uint) (*models.Photo, error) {
	return s.find(photoID)
}

func (s *PhotoService) GetAllByRoom(roomID uint) ([]models.Photo, error) {
	if _, err := findRoom(s.DB, roomID); err != nil {
		return nil, err
	}
	var photos []models.Photo
	if err := s.DB.Where("room_id = ?", roomID).Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// ReplacePhotos deletes the room's current photos (rows and files) and
// stores the new set.
func (s *PhotoService) ReplacePhotos(roomID uint, headers []*multipart.FileHeader) ([]models.Photo, error) {
	if len(headers) > maxPhotosPerRoom {
		return nil, &utils.ValidationError{
			Message: "One or more fields are not valid!",
			Fields:  map[string]string{"photos": fmt.Sprintf("a room can have at most %d photos", maxPhotosPerRoom)},
		}
	}
	if err := s.deleteByRoom(roomID); err != nil {
		return nil, err
	}
	return s.AddPhotos(roomID, headers)
}

// DeleteAllByRoom removes every photo of a room, files included.
func (s *PhotoService) DeleteAllByRoom(roomID uint) error {
	if _, err := findRoom(s.DB, roomID); err != nil {
		return err
	}
	return s.deleteByRoom(roomID)
}

func (s *PhotoService) deleteByRoom(roomID uint) error {
	var photos []models.Photo
	if err := s.DB.Where("room_id = ?", roomID).Find(&photos).Error; err != nil {
		return err
	}
	for i := range photos {
		if err := s.Files.DeleteFile(photos[i].Name); err != nil {
			return err
		}
	}
	return s.DB.Where("room_id = ?", roomID).Delete(&models.Photo{}).Error
}

func (s *PhotoService) DeletePhoto(photoID uint) error {
	photo, err := s.find(photoID)
	if err != nil {
		return err
	}
	if err := s.Files.DeleteFile(photo.Name); err != nil {
		return err
	}
	return s.DB.Delete(&models.Photo{}, photo.ID).Error
}
