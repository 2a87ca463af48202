package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/camlisting/camlisting/internal/domain"
)

type SubmitInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (req *SubmitInquiryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Message, validation.Required, validation.Length(10, 5000)),
	)
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateInquiryStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In(domain.InquiryStatusNew, domain.InquiryStatusAnswered, domain.InquiryStatusArchived)),
	)
}
