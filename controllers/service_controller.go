package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhtriet326/Hotel-management-system/services"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type ServiceController struct {
	Catalog *services.ServiceService
}

func NewServiceController(catalog *services.ServiceService) *ServiceController {
	return &ServiceController{Catalog: catalog}
}

type serviceRequest struct {
	ServiceName string `json:"serviceName" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
}

func (ctl *ServiceController) CreateService(c *gin.Context) {
	var req serviceRequest
	if !bindJSON(c, &req) {
		return
	}
	service, err := ctl.Catalog.CreateService(req.ServiceName, req.Description, req.Price)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, service)
}

func (ctl *ServiceController) GetAllServices(c *gin.Context) {
	list, err := ctl.Catalog.GetAllServices()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctl *ServiceController) GetServiceByID(c *gin.Context) {
	serviceID, ok := pathID(c, "serviceId")
	if !ok {
		return
	}
	service, err := ctl.Catalog.GetServiceByID(serviceID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, service)
}

func (ctl *ServiceController) GetServiceByName(c *gin.Context) {
	service, err := ctl.Catalog.GetServiceByName(c.Param("serviceName"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, service)
}

func (ctl *ServiceController) GetAllByPriceBetween(c *gin.Context) {
	list, err := ctl.Catalog.GetAllByPriceBetween(c.Param("minPrice"), c.Param("maxPrice"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctl *ServiceController) UpdateService(c *gin.Context) {
	serviceID, ok := pathID(c, "serviceId")
	if !ok {
		return
	}
	var req serviceRequest
	if !bindJSON(c, &req) {
		return
	}
	service, err := ctl.Catalog.UpdateService(serviceID, req.ServiceName, req.Description, req.Price)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, service)
}

func (ctl *ServiceController) DeleteService(c *gin.Context) {
	serviceID, ok := pathID(c, "serviceId")
	if !ok {
		return
	}
	if err := ctl.Catalog.DeleteService(serviceID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
