package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhtriet326/Hotel-management-system/services"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Roles    string `json:"roles"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := ctl.Auth.Register(req.Username, req.Password, req.Roles)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"userId":   user.ID,
		"username": user.Username,
		"roles":    user.Roles,
	})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := ctl.Auth.Login(req.Username, req.Password)
	if err != nil {
		// Do not reveal whether the username or the password was wrong.
		utils.JSONError(c, http.StatusUnauthorized, "Incorrect username or password!")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pair)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (ctl *AuthController) Refresh(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := ctl.Auth.Refresh(req.RefreshToken)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pair)
}
