package domain

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegistrationRequest is the two-line handshake payload sent by a
// student right after connecting: display name, then uid.
type RegistrationRequest struct {
	Name string `validate:"required,max=64"`
	UID  string `validate:"required,max=32"`
}

func ValidateRegistration(req RegistrationRequest) error {
	return validate.Struct(req)
}
