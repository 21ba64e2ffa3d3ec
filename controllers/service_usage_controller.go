package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minhtriet326/Hotel-management-system/services"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type ServiceUsageController struct {
	Usages *services.ServiceUsageService
}

func NewServiceUsageController(usages *services.ServiceUsageService) *ServiceUsageController {
	return &ServiceUsageController{Usages: usages}
}

type serviceUsageRequest struct {
	NumOfUsers     int    `json:"numOfUsers" binding:"required"`
	StartDate      string `json:"startDate" binding:"required"`
	EndDate        string `json:"endDate" binding:"required"`
	ServiceVoucher string `json:"serviceVoucher"`
}

func (ctl *ServiceUsageController) CreateServiceUsage(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	serviceID, ok := pathID(c, "serviceId")
	if !ok {
		return
	}
	var req serviceUsageRequest
	if !bindJSON(c, &req) {
		return
	}

	usage, err := ctl.Usages.CreateServiceUsage(bookingID, serviceID,
		req.NumOfUsers, req.StartDate, req.EndDate, req.ServiceVoucher)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, services.ServiceUsageToDTO(usage))
}

func (ctl *ServiceUsageController) GetAllServiceUsages(c *gin.Context) {
	usages, err := ctl.Usages.GetAllServiceUsages()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.ServiceUsagesToDTO(usages))
}

func (ctl *ServiceUsageController) GetServiceUsageByID(c *gin.Context) {
	usageID, ok := pathID(c, "serviceUsageId")
	if !ok {
		return
	}
	usage, err := ctl.Usages.GetServiceUsageByID(usageID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.ServiceUsageToDTO(usage))
}

func (ctl *ServiceUsageController) GetAllByNumOfUsers(c *gin.Context) {
	numOfUsers, err := strconv.Atoi(c.Param("numOfUsers"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "numOfUsers must be an integer")
		return
	}
	usages, err := ctl.Usages.GetAllByNumOfUsers(numOfUsers)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.ServiceUsagesToDTO(usages))
}

func (ctl *ServiceUsageController) GetAllByStartDate(c *gin.Context) {
	usages, err := ctl.Usages.GetAllByStartDate(c.Param("startDate"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.ServiceUsagesToDTO(usages))
}

func (ctl *ServiceUsageController) GetAllByEndDate(c *gin.Context) {
	usages, err := ctl.Usages.GetAllByEndDate(c.Param("endDate"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.ServiceUsagesToDTO(usages))
}

func (ctl *ServiceUsageController) GetAllByServiceVoucher(c *gin.Context) {
	usages, err := ctl.Usages.GetAllByServiceVoucher(c.Param("serviceVoucher"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.ServiceUsagesToDTO(usages))
}

func (ctl *ServiceUsageController) GetAllByPriceBetween(c *gin.Context) {
	usages, err := ctl.Usages.GetAllByPriceBetween(c.Param("minPrice"), c.Param("maxPrice"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.ServiceUsagesToDTO(usages))
}

func (ctl *ServiceUsageController) GetAllByService(c *gin.Context) {
	serviceID, ok := pathID(c, "serviceId")
	if !ok {
		return
	}
	usages, err := ctl.Usages.GetAllByService(serviceID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.ServiceUsagesToDTO(usages))
}

func (ctl *ServiceUsageController) GetAllByBooking(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	usages, err := ctl.Usages.GetAllByBooking(bookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.ServiceUsagesToDTO(usages))
}

func (ctl *ServiceUsageController) TotalServicePriceOfBooking(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	total, err := ctl.Usages.TotalServicePriceOfBooking(bookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"totalServicePrice": total.String()})
}

func (ctl *ServiceUsageController) UpdateServiceUsage(c *gin.Context) {
	usageID, ok := pathID(c, "serviceUsageId")
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	serviceID, ok := pathID(c, "serviceId")
	if !ok {
		return
	}
	var req serviceUsageRequest
	if !bindJSON(c, &req) {
		return
	}

	usage, err := ctl.Usages.UpdateServiceUsage(usageID, bookingID, serviceID,
		req.NumOfUsers, req.StartDate, req.EndDate, req.ServiceVoucher)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.ServiceUsageToDTO(usage))
}

func (ctl *ServiceUsageController) DeleteServiceUsage(c *gin.Context) {
	usageID, ok := pathID(c, "serviceUsageId")
	if !ok {
		return
	}
	if err := ctl.Usages.DeleteServiceUsage(usageID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Service usage deleted successfully"})
}
