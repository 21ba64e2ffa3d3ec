package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhtriet326/Hotel-management-system/services"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type BookingHistoryController struct {
	Histories *services.BookingHistoryService
}

func NewBookingHistoryController(histories *services.BookingHistoryService) *BookingHistoryController {
	return &BookingHistoryController{Histories: histories}
}

func (ctl *BookingHistoryController) respondList(c *gin.Context, entries []services.BookingHistoryDTO, err error) {
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, entries)
}

func (ctl *BookingHistoryController) GetAll(c *gin.Context) {
	entries, err := ctl.Histories.GetAll()
	ctl.respondList(c, services.BookingHistoriesToDTO(entries), err)
}

func (ctl *BookingHistoryController) GetByID(c *gin.Context) {
	historyID, ok := pathID(c, "bookHistoryId")
	if !ok {
		return
	}
	entry, err := ctl.Histories.GetByID(historyID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingHistoryToDTO(entry))
}

func (ctl *BookingHistoryController) GetAllByActualCheckInDate(c *gin.Context) {
	entries, err := ctl.Histories.GetAllByActualCheckInDate(c.Param("actualCheckInDate"))
	ctl.respondList(c, services.BookingHistoriesToDTO(entries), err)
}

func (ctl *BookingHistoryController) GetAllByActualCheckOutDate(c *gin.Context) {
	entries, err := ctl.Histories.GetAllByActualCheckOutDate(c.Param("actualCheckOutDate"))
	ctl.respondList(c, services.BookingHistoriesToDTO(entries), err)
}

func (ctl *BookingHistoryController) GetAllByHistoryType(c *gin.Context) {
	entries, err := ctl.Histories.GetAllByHistoryType(c.Param("historyType"))
	ctl.respondList(c, services.BookingHistoriesToDTO(entries), err)
}

func (ctl *BookingHistoryController) GetAllByNote(c *gin.Context) {
	entries, err := ctl.Histories.GetAllByNote(c.Param("keyword"))
	ctl.respondList(c, services.BookingHistoriesToDTO(entries), err)
}

func (ctl *BookingHistoryController) GetAllByChangeDate(c *gin.Context) {
	entries, err := ctl.Histories.GetAllByChangeDate(c.Param("changeDate"))
	ctl.respondList(c, services.BookingHistoriesToDTO(entries), err)
}

func (ctl *BookingHistoryController) GetAllByPriceBetween(c *gin.Context) {
	entries, err := ctl.Histories.GetAllByPriceBetween(c.Param("minPrice"), c.Param("maxPrice"))
	ctl.respondList(c, services.BookingHistoriesToDTO(entries), err)
}

func (ctl *BookingHistoryController) GetAllByBooking(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	entries, err := ctl.Histories.GetAllByBooking(bookingID)
	ctl.respondList(c, services.BookingHistoriesToDTO(entries), err)
}

func (ctl *BookingHistoryController) GetAllByRoom(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	entries, err := ctl.Histories.GetAllByRoom(roomID)
	ctl.respondList(c, services.BookingHistoriesToDTO(entries), err)
}

type updateBookingHistoryRequest struct {
	ActualCheckInDate  string `json:"actualCheckInDate" binding:"required"`
	ActualCheckOutDate string `json:"actualCheckOutDate" binding:"required"`
	HistoryType        string `json:"historyType" binding:"required"`
	Note               string `json:"note"`
	ChangeDate         string `json:"changeDate"`
	FinalTotalPrice    string `json:"finalTotalPrice"`
}

func (ctl *BookingHistoryController) UpdateBookingHistory(c *gin.Context) {
	historyID, ok := pathID(c, "bookHistoryId")
	if !ok {
		return
	}
	var req updateBookingHistoryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := ctl.Histories.UpdateBookingHistory(historyID,
		req.ActualCheckInDate, req.ActualCheckOutDate, req.HistoryType,
		req.Note, req.ChangeDate, req.FinalTotalPrice)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingHistoryToDTO(entry))
}

func (ctl *BookingHistoryController) DeleteBookingHistory(c *gin.Context) {
	historyID, ok := pathID(c, "bookHistoryId")
	if !ok {
		return
	}
	if err := ctl.Histories.DeleteBookingHistory(historyID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Booking history deleted successfully"})
}
