package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SubmitReviewRequest struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

func (req *SubmitReviewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.Title, validation.Length(0, 200)),
		validation.Field(&req.Comment, validation.Length(0, 5000)),
	)
}

type ModerateReviewRequest struct {
	Approved bool `json:"approved"`
}
