package dto

import (
	"time"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/usecase"
)

// CreateUserRequest represents the API request for adding a user.
// ID and level are optional; the server generates an ID and starts at BASIC.
type CreateUserRequest struct {
	ID        string `json:"id" binding:"omitempty,max=64"`
	Name      string `json:"name" binding:"required,max=255"`
	Password  string `json:"password" binding:"max=255"`
	Level     string `json:"level" binding:"omitempty,level"`
	Login     int    `json:"login" binding:"gte=0"`
	Recommend int    `json:"recommend" binding:"gte=0"`
	Email     string `json:"email" binding:"omitempty,email,max=255"`
}

// UpdateUserRequest represents the API request for replacing a user's fields
type UpdateUserRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Password  string `json:"password" binding:"max=255"`
	Level     string `json:"level" binding:"required,level"`
	Login     int    `json:"login" binding:"gte=0"`
	Recommend int    `json:"recommend" binding:"gte=0"`
	Email     string `json:"email" binding:"omitempty,email,max=255"`
}

// UserResponse represents a user in API responses. The password is never returned.
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Level        string    `json:"level"`
	Login        int       `json:"login"`
	Recommend    int       `json:"recommend"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LastUpgraded time.Time `json:"lastUpgraded"`
}

// CountResponse represents the API response for the user count
type CountResponse struct {
	Count int `json:"count"`
}

// UpgradedUserResponse describes one promoted user
type UpgradedUserResponse struct {
	UserID string `json:"userId"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// UpgradeLevelsResponse represents the API response for a level upgrade run
type UpgradeLevelsResponse struct {
	Checked  int                    `json:"checked"`
	Upgraded []UpgradedUserResponse `json:"upgraded"`
}

// HealthResponse represents the API response for the health check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// NewUserResponse converts a user entity to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Level:        user.Level.String(),
		Login:        user.Login,
		Recommend:    user.Recommend,
		Email:        user.Email,
		CreatedAt:    user.CreatedAt,
		LastUpgraded: user.LastUpgraded,
	}
}

// NewUpgradeLevelsResponse converts an upgrade result to its API representation
func NewUpgradeLevelsResponse(result *usecase.UpgradeResult) UpgradeLevelsResponse {
	resp := UpgradeLevelsResponse{
		Checked:  result.Checked,
		Upgraded: make([]UpgradedUserResponse, 0, len(result.Upgraded)),
	}
	for _, u := range result.Upgraded {
		resp.Upgraded = append(resp.Upgraded, UpgradedUserResponse{
			UserID: u.UserID,
			From:   u.From.String(),
			To:     u.To.String(),
		})
	}
	return resp
}
