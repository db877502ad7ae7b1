package validator

import (
	"fmt"
	"strings"

	"github.com/s21platform/thought-service/internal/api"
	"github.com/s21platform/thought-service/internal/model"
)

const (
	maxContentLength  = 2000
	maxCategoryLength = 50
	maxImageURLLength = 500
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateThought(req *api.CreateThoughtRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("%w: content cannot be empty", model.ErrValidation)
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("%w: content exceeds maximum length of %d characters", model.ErrValidation, maxContentLength)
	}

	if req.Category != nil && len([]rune(*req.Category)) > maxCategoryLength {
		return fmt.Errorf("%w: category exceeds maximum length of %d characters", model.ErrValidation, maxCategoryLength)
	}

	if req.ImageUrl != nil {
		if err := validateImageURL(*req.ImageUrl); err != nil {
			return err
		}
	}

	return nil
}

func (v *Validator) ValidateUpdateThought(req *api.UpdateThoughtRequest) error {
	if req.Content == nil && req.Category == nil && req.ImageUrl == nil && req.DisplayName == nil {
		return fmt.Errorf("%w: no fields to update", model.ErrValidation)
	}

	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return fmt.Errorf("%w: content cannot be empty", model.ErrValidation)
	}

	if req.Content != nil && len([]rune(*req.Content)) > maxContentLength {
		return fmt.Errorf("%w: content exceeds maximum length of %d characters", model.ErrValidation, maxContentLength)
	}

	if req.ImageUrl != nil && *req.ImageUrl != "" {
		if err := validateImageURL(*req.ImageUrl); err != nil {
			return err
		}
	}

	return nil
}

func (v *Validator) ValidateAddReply(req *api.AddReplyRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("%w: content cannot be empty", model.ErrValidation)
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("%w: content exceeds maximum length of %d characters", model.ErrValidation, maxContentLength)
	}

	return nil
}

func validateImageURL(url string) error {
	if len(url) > maxImageURLLength {
		return fmt.Errorf("%w: image url exceeds maximum length of %d characters", model.ErrValidation, maxImageURLLength)
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%w: image url must start with http:// or https://", model.ErrValidation)
	}

	return nil
}
