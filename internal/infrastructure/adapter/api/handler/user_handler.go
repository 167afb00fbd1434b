package handler

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateUser handles the POST /users endpoint
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	var level entity.Level
	if req.Level != "" {
		parsed, err := entity.ParseLevel(req.Level)
		if err != nil {
			h.respondError(c, "create user", err)
			return
		}
		level = parsed
	}

	user := &entity.User{
		ID:        req.ID,
		Name:      req.Name,
		Password:  req.Password,
		Level:     level,
		Login:     req.Login,
		Recommend: req.Recommend,
		Email:     req.Email,
	}

	if err := h.userUseCase.Add(c.Request.Context(), user); err != nil {
		h.respondError(c, "create user", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// GetUser handles the GET /users/{id} endpoint
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "get user", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListUsers handles the GET /users endpoint
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, "list users", err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, dto.NewUserResponse(user))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateUser handles the PUT /users/{id} endpoint. The use case keeps the
// stored creation time and refuses a lower level.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	level, err := entity.ParseLevel(req.Level)
	if err != nil {
		h.respondError(c, "update user", err)
		return
	}

	user := &entity.User{
		ID:        c.Param("id"),
		Name:      req.Name,
		Password:  req.Password,
		Level:     level,
		Login:     req.Login,
		Recommend: req.Recommend,
		Email:     req.Email,
	}

	if err := h.userUseCase.Update(c.Request.Context(), user); err != nil {
		h.respondError(c, "update user", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// DeleteAllUsers handles the DELETE /users endpoint
func (h *UserHandler) DeleteAllUsers(c *gin.Context) {
	if err := h.userUseCase.DeleteAll(c.Request.Context()); err != nil {
		h.respondError(c, "delete users", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CountUsers handles the GET /users/count endpoint
func (h *UserHandler) CountUsers(c *gin.Context) {
	count, err := h.userUseCase.GetCount(c.Request.Context())
	if err != nil {
		h.respondError(c, "count users", err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// UpgradeLevels handles the POST /users/upgrade-levels endpoint
func (h *UserHandler) UpgradeLevels(c *gin.Context) {
	result, err := h.userUseCase.UpgradeLevels(c.Request.Context())
	if err != nil {
		h.respondError(c, "upgrade levels", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUpgradeLevelsResponse(result))
}

func (h *UserHandler) badRequest(c *gin.Context, err error) {
	h.logger.Warn("Invalid user request format", map[string]any{
		"error": err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}

// respondError maps a domain error to its HTTP status and writes the error body
func (h *UserHandler) respondError(c *gin.Context, operation string, err error) {
	statusCode, message := statusFor(err)

	fields := map[string]any{
		"operation": operation,
		"status":    statusCode,
		"error":     err.Error(),
	}
	if statusCode >= http.StatusInternalServerError {
		h.logger.Error("Request failed", fields)
	} else {
		h.logger.Warn("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

func statusFor(err error) (int, string) {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest, err.Error()
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, domainerr.ErrCannotUpgradeLevel),
		errors.Is(err, domainerr.ErrLevelDowngrade):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domainerr.ErrTransactionConflict),
		errors.Is(err, domainerr.ErrUnexpectedRollback):
		return http.StatusConflict, "Concurrent modification, retry the request"
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable, "Database unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
