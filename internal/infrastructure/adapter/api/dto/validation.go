package dto

import (
	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
// It must run before the router serves requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("level", validateLevel)
}

func validateLevel(fl validator.FieldLevel) bool {
	_, err := entity.ParseLevel(fl.Field().String())
	return err == nil
}
