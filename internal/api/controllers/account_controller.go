package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type AccountController struct {
	accountService services.AccountService
}

func NewAccountController(accountService services.AccountService) *AccountController {
	return &AccountController{accountService: accountService}
}

// Register godoc
// @Summary Register a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Sign up payload"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/register [post]
func (ctrl *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	account, err := ctrl.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, account, "Account created successfully")
}

// Login godoc
// @Summary Log in with email and password
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/login [post]
func (ctrl *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := ctrl.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Login successful")
}

// ForgotPassword godoc
// @Summary Request a password reset token
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body request_models.RequestForgotPassword true "Email payload"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/forgot-password [post]
func (ctrl *AccountController) ForgotPassword(c *gin.Context) {
	var req request_models.RequestForgotPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := ctrl.accountService.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"reset_token": token}, "Reset token issued")
}

// ResetPassword godoc
// @Summary Reset password with a previously issued token
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body request_models.ForgotPasswordRequest true "Reset payload"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/reset-password [post]
func (ctrl *AccountController) ResetPassword(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := ctrl.accountService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Password updated successfully")
}
