package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhtriet326/Hotel-management-system/services"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

type paymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

func (ctl *PaymentController) CreatePayment(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	var req paymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := ctl.Payments.CreatePayment(bookingID, req.PaymentMethod, req.PaymentStatus)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, services.PaymentToDTO(payment))
}

func (ctl *PaymentController) GetAllPayments(c *gin.Context) {
	payments, err := ctl.Payments.GetAllPayments()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.PaymentsToDTO(payments))
}

func (ctl *PaymentController) GetPaymentByID(c *gin.Context) {
	paymentID, ok := pathID(c, "paymentId")
	if !ok {
		return
	}
	payment, err := ctl.Payments.GetPaymentByID(paymentID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.PaymentToDTO(payment))
}

func (ctl *PaymentController) GetPaymentByBooking(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	payment, err := ctl.Payments.GetPaymentByBooking(bookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.PaymentToDTO(payment))
}

func (ctl *PaymentController) UpdatePayment(c *gin.Context) {
	paymentID, ok := pathID(c, "paymentId")
	if !ok {
		return
	}
	var req paymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := ctl.Payments.UpdatePayment(paymentID, req.PaymentMethod, req.PaymentStatus)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.PaymentToDTO(payment))
}

func (ctl *PaymentController) DeletePayment(c *gin.Context) {
	paymentID, ok := pathID(c, "paymentId")
	if !ok {
		return
	}
	if err := ctl.Payments.DeletePayment(paymentID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}
