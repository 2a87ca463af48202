package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/camlisting/camlisting/internal/domain"
)

type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Image     string `json:"image"`
}

func (req *CreateUserRequest) Validate(imageHosts []string) error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Role, validation.Required, validation.In(domain.RoleUser, domain.RoleCampOwner, domain.RoleAdmin)),
	)
	if err != nil {
		return err
	}

	if ok, _ := passwordExp.MatchString(req.Password); !ok {
		return errInvalidPassword
	}

	return validateImageURL(req.Image, imageHosts)
}

type UpdateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Image     string `json:"image"`

	// NewPassword is optional; when present the password is rotated.
	NewPassword string `json:"new_password"`
}

func (req *UpdateUserRequest) Validate(imageHosts []string) error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Role, validation.Required, validation.In(domain.RoleUser, domain.RoleCampOwner, domain.RoleAdmin)),
	)
	if err != nil {
		return err
	}

	if req.NewPassword != "" {
		if ok, _ := passwordExp.MatchString(req.NewPassword); !ok {
			return errInvalidPassword
		}
	}

	return validateImageURL(req.Image, imageHosts)
}
