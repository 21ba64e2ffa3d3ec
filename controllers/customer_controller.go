package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/services"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type CustomerController struct {
	Customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{Customers: customers}
}

type customerRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address"`
}

func (r *customerRequest) toModel() *models.Customer {
	return &models.Customer{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
	}
}

func (ctl *CustomerController) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if !bindJSON(c, &req) {
		return
	}
	customer, err := ctl.Customers.CreateCustomer(req.toModel())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

func (ctl *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := ctl.Customers.GetAllCustomers()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

func (ctl *CustomerController) GetCustomerByID(c *gin.Context) {
	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}
	customer, err := ctl.Customers.GetCustomerByID(customerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

func (ctl *CustomerController) GetCustomerByEmail(c *gin.Context) {
	customer, err := ctl.Customers.GetCustomerByEmail(c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

func (ctl *CustomerController) GetCustomerByPhoneNumber(c *gin.Context) {
	customer, err := ctl.Customers.GetCustomerByPhoneNumber(c.Param("phoneNumber"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

func (ctl *CustomerController) GetAllByName(c *gin.Context) {
	customers, err := ctl.Customers.GetAllByName(c.Param("keyword"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

func (ctl *CustomerController) UpdateCustomer(c *gin.Context) {
	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}
	var req customerRequest
	if !bindJSON(c, &req) {
		return
	}
	customer, err := ctl.Customers.UpdateCustomer(customerID, req.toModel())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

func (ctl *CustomerController) DeleteCustomer(c *gin.Context) {
	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}
	if err := ctl.Customers.DeleteCustomer(customerID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
