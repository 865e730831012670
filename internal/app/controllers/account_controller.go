package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/services"
	"github.com/lvogel/admithub/internal/middleware"
)

// AccountController handles staff account administration endpoints
type AccountController struct {
	accountService *services.AccountService
}

// NewAccountController creates a new AccountController
func NewAccountController(accountService *services.AccountService) *AccountController {
	return &AccountController{accountService: accountService}
}

func toAccountResponse(account *models.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:                account.ID,
		FirstName:         account.FirstName,
		LastName:          account.LastName,
		Email:             account.Email,
		Roles:             account.Roles,
		PasswordTemporary: account.PasswordTemporary,
		Active:            account.Active,
		CreatedAt:         account.CreatedAt,
		LastLogin:         account.LastLogin,
	}
}

// Create makes a new staff account
// @Summary Create staff account
// @Description Creates a staff account with a one-time temporary password
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAccountRequest true "Account data"
// @Success 201 {object} dto.APIResponse{data=dto.CreateAccountResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /accounts [post]
func (c *AccountController) Create(ctx *gin.Context) {
	creatorID, ok := middleware.AccountID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	account, temporaryPassword, err := c.accountService.Create(ctx, creatorID, req.FirstName, req.LastName, req.Email, req.Roles)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.CreateAccountResponse{
			Account:           toAccountResponse(account),
			TemporaryPassword: temporaryPassword,
		},
		Timestamp: time.Now(),
	})
}

// List retrieves all staff accounts
// @Summary List staff accounts
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AccountResponse} "Accounts retrieved"
// @Router /accounts [get]
func (c *AccountController) List(ctx *gin.Context) {
	accounts, err := c.accountService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, toAccountResponse(account))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// Get retrieves a single staff account
// @Summary Get staff account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse} "Account retrieved"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{id} [get]
func (c *AccountController) Get(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	account, err := c.accountService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toAccountResponse(account),
		Timestamp: time.Now(),
	})
}

// Update rewrites a staff account
// @Summary Update staff account
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID" Format(uuid)
// @Param request body dto.UpdateAccountRequest true "Account data"
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse} "Account updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{id} [put]
func (c *AccountController) Update(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	account, err := c.accountService.Update(ctx, id, req.FirstName, req.LastName, req.Email, req.Roles, *req.Active)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toAccountResponse(account),
		Timestamp: time.Now(),
	})
}

// ResetPassword issues a fresh temporary password
// @Summary Reset account password
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Temporary password issued"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{id}/reset-password [post]
func (c *AccountController) ResetPassword(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	temporaryPassword, err := c.accountService.ResetPassword(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"temporaryPassword": temporaryPassword},
		Timestamp: time.Now(),
	})
}

// Delete removes a staff account
// @Summary Delete staff account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Account deleted"
// @Failure 400 {object} dto.ErrorResponse "Last admin cannot be deleted"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{id} [delete]
func (c *AccountController) Delete(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.accountService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Account deleted"},
		Timestamp: time.Now(),
	})
}

// GetRoles retrieves all permission roles
// @Summary List roles
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RoleResponse} "Roles retrieved"
// @Router /roles [get]
func (c *AccountController) GetRoles(ctx *gin.Context) {
	roles, err := c.accountService.GetRoles(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, dto.RoleResponse{
			ID:          role.ID,
			Key:         role.Key,
			Name:        role.Name,
			Description: role.Description,
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}
