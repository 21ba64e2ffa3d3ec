package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhtriet326/Hotel-management-system/services"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type PhotoController struct {
	Photos *services.PhotoService
	Files  *services.FileService
}

func NewPhotoController(photos *services.PhotoService, files *services.FileService) *PhotoController {
	return &PhotoController{Photos: photos, Files: files}
}

func (ctl *PhotoController) AddPhotos(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	headers := form.File["photos"]
	if len(headers) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "no photos attached")
		return
	}

	photos, err := ctl.Photos.AddPhotos(roomID, headers)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, services.PhotosToDTO(photos))
}

func (ctl *PhotoController) GetAllPhotos(c *gin.Context) {
	photos, err := ctl.Photos.GetAllPhotos()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.PhotosToDTO(photos))
}

func (ctl *PhotoController) GetPhotoByID(c *gin.Context) {
	photoID, ok := pathID(c, "photoId")
	if !ok {
		return
	}
	photo, err := ctl.Photos.GetPhotoByID(photoID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.PhotoToDTO(photo))
}

func (ctl *PhotoController) GetAllByRoom(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	photos, err := ctl.Photos.GetAllByRoom(roomID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.PhotosToDTO(photos))
}

// ServeFile streams a stored photo by its on-disk name.
func (ctl *PhotoController) ServeFile(c *gin.Context) {
	path, err := ctl.Files.FilePath(c.Param("fileName"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.File(path)
}

func (ctl *PhotoController) DeleteAllByRoom(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	if err := ctl.Photos.DeleteAllByRoom(roomID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Photos deleted successfully"})
}

func (ctl *PhotoController) DeletePhoto(c *gin.Context) {
	photoID, ok := pathID(c, "photoId")
	if !ok {
		return
	}
	if err := ctl.Photos.DeletePhoto(photoID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}
