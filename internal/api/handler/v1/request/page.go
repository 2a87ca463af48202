package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type PageRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

func (req *PageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Slug, validation.Required, validation.Match(slugExp)),
		validation.Field(&req.Content, validation.Required),
	)
}
