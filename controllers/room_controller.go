package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minhtriet326/Hotel-management-system/services"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

// formPhotos pulls the optional "photos" files out of a multipart form.
func formPhotos(c *gin.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if err == http.ErrNotMultipart {
			return nil, nil
		}
		return nil, err
	}
	return form.File["photos"], nil
}

func (ctl *RoomController) CreateRoom(c *gin.Context) {
	headers, err := formPhotos(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	room, err := ctl.Rooms.CreateRoom(
		c.PostForm("roomNumber"),
		c.PostForm("roomType"),
		c.PostForm("price"),
		headers,
	)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, services.RoomToDTO(room))
}

func (ctl *RoomController) GetAllRooms(c *gin.Context) {
	pageNumber, _ := strconv.Atoi(c.DefaultQuery("pageNumber", "0"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	sortBy := c.DefaultQuery("sortBy", "roomId")
	sortDir := c.DefaultQuery("sortDir", "asc")

	page, err := ctl.Rooms.GetAllRooms(pageNumber, pageSize, sortBy, sortDir)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, page)
}

func (ctl *RoomController) GetRoomByID(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	room, err := ctl.Rooms.GetRoomByID(roomID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.RoomToDTO(room))
}

func (ctl *RoomController) GetRoomByNumber(c *gin.Context) {
	room, err := ctl.Rooms.GetRoomByNumber(c.Param("roomNumber"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.RoomToDTO(room))
}

func (ctl *RoomController) GetAllByRoomType(c *gin.Context) {
	rooms, err := ctl.Rooms.GetAllByRoomType(c.Param("roomType"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.RoomsToDTO(rooms))
}

func (ctl *RoomController) GetAllByRoomStatus(c *gin.Context) {
	rooms, err := ctl.Rooms.GetAllByRoomStatus(c.Param("roomStatus"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.RoomsToDTO(rooms))
}

func (ctl *RoomController) GetAllByPriceBetween(c *gin.Context) {
	rooms, err := ctl.Rooms.GetAllByPriceBetween(c.Param("minPrice"), c.Param("maxPrice"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.RoomsToDTO(rooms))
}

func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	headers, err := formPhotos(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	room, err := ctl.Rooms.UpdateRoom(roomID,
		c.PostForm("roomNumber"),
		c.PostForm("roomType"),
		c.PostForm("price"),
		c.PostForm("roomStatus"),
		headers,
	)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.RoomToDTO(room))
}

func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	if err := ctl.Rooms.DeleteRoom(roomID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
