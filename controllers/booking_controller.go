package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhtriet326/Hotel-management-system/services"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type reserveRoomRequest struct {
	CheckInDate    string `json:"checkInDate" binding:"required"`
	CheckOutDate   string `json:"checkOutDate" binding:"required"`
	BookingVoucher string `json:"bookingVoucher"`
}

func (ctl *BookingController) ReserveRoom(c *gin.Context) {
	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	var req reserveRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := ctl.Bookings.ReserveRoom(customerID, roomID, req.CheckInDate, req.CheckOutDate, req.BookingVoucher)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, services.BookingToDTO(booking))
}

type checkInRequest struct {
	ActualCheckInDate  string `json:"actualCheckInDate" binding:"required"`
	ActualCheckOutDate string `json:"actualCheckOutDate" binding:"required"`
	Note               string `json:"note"`
}

func (ctl *BookingController) CheckIn(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	var req checkInRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := ctl.Bookings.CheckIn(bookingID, req.ActualCheckInDate, req.ActualCheckOutDate, req.Note)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingToDTO(booking))
}

type checkOutRequest struct {
	ActualCheckOutDate string `json:"actualCheckOutDate"`
	Note               string `json:"note"`
}

func (ctl *BookingController) CheckOut(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	var req checkOutRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, price, err := ctl.Bookings.CheckOut(bookingID, req.ActualCheckOutDate, req.Note)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	dto := services.BookingToDTO(booking)
	dto.FinalTotalPrice = price.String()
	utils.JSONSuccess(c, http.StatusOK, dto)
}

type extendStayRequest struct {
	NewCheckOutDate string `json:"newCheckOutDate" binding:"required"`
	Note            string `json:"note"`
}

func (ctl *BookingController) ExtendStay(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	var req extendStayRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := ctl.Bookings.ExtendStay(bookingID, req.NewCheckOutDate, req.Note)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingToDTO(booking))
}

type changeRoomRequest struct {
	ChangeDate string `json:"changeDate" binding:"required"`
	Note       string `json:"note"`
}

func (ctl *BookingController) ChangeRoom(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	newRoomID, ok := pathID(c, "newRoomId")
	if !ok {
		return
	}
	var req changeRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := ctl.Bookings.ChangeRoom(bookingID, newRoomID, req.ChangeDate, req.Note)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingToDTO(booking))
}

type cancelBookingRequest struct {
	Note string `json:"note"`
}

func (ctl *BookingController) CancelBooking(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	var req cancelBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := ctl.Bookings.CancelBooking(bookingID, req.Note)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingToDTO(booking))
}

type updateBookingRequest struct {
	CheckInDate    string `json:"checkInDate" binding:"required"`
	CheckOutDate   string `json:"checkOutDate" binding:"required"`
	BookingVoucher string `json:"bookingVoucher"`
}

func (ctl *BookingController) UpdateBooking(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	var req updateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := ctl.Bookings.UpdateBooking(bookingID, roomID, req.CheckInDate, req.CheckOutDate, req.BookingVoucher)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingToDTO(booking))
}

func (ctl *BookingController) DeleteBooking(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	if err := ctl.Bookings.DeleteBooking(bookingID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

func (ctl *BookingController) FinalTotalPrice(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	price, err := ctl.Bookings.FinalTotalPrice(bookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"finalTotalPrice": price.String()})
}

func (ctl *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := ctl.Bookings.GetAllBookings()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingsToDTO(bookings))
}

func (ctl *BookingController) GetBookingByID(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	booking, err := ctl.Bookings.GetBookingByID(bookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingToDTO(booking))
}

func (ctl *BookingController) GetAllByCheckInDate(c *gin.Context) {
	bookings, err := ctl.Bookings.GetAllBookingsByCheckInDate(c.Param("checkInDate"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingsToDTO(bookings))
}

func (ctl *BookingController) GetAllByCheckOutDate(c *gin.Context) {
	bookings, err := ctl.Bookings.GetAllBookingsByCheckOutDate(c.Param("checkOutDate"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingsToDTO(bookings))
}

func (ctl *BookingController) GetAllByStatus(c *gin.Context) {
	bookings, err := ctl.Bookings.GetAllBookingsByStatus(c.Param("bookingStatus"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingsToDTO(bookings))
}

func (ctl *BookingController) GetAllByCustomer(c *gin.Context) {
	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}
	bookings, err := ctl.Bookings.GetAllBookingsByCustomer(customerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingsToDTO(bookings))
}

func (ctl *BookingController) GetAllByRoom(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	bookings, err := ctl.Bookings.GetAllBookingsByRoom(roomID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingsToDTO(bookings))
}
