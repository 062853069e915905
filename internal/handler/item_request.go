package handler

import (
	"strings"

	"github.com/Ezio50/Microserv/internal/model"
	"github.com/Ezio50/Microserv/internal/validation"
)

const (
	msgInvalidData   = "Invalid data"
	msgInvalidItemID = "Invalid item id"
)

// ListItemsRequest carries no input.
type ListItemsRequest struct{}

func (r *ListItemsRequest) Validate() error {
	return nil
}

// ItemByIDRequest addresses one item through the :id path parameter.
type ItemByIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"min=0"`
}

func (r *ItemByIDRequest) Validate() error {
	return validation.Struct(r)
}

func (r *ItemByIDRequest) PathMessage() string {
	return msgInvalidItemID
}

// CreateItemRequest is the POST /items body. Empty strings count as missing.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (r *CreateItemRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateItemRequest) ValidationMessage() string {
	return msgInvalidData
}

// UpdateItemRequest is the PATCH /items/:id body. Absent fields are left unchanged.
type UpdateItemRequest struct {
	ID          int64   `param:"id" json:"-" validate:"min=0"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateItemRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs = append(errs, validation.CustomValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		errs = append(errs, validation.CustomValidationError{Field: "description", Message: "must not be empty"})
	}
	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateItemRequest) ValidationMessage() string {
	return msgInvalidData
}

func (r *UpdateItemRequest) PathMessage() string {
	return msgInvalidItemID
}

// Update returns the partial update described by the request.
func (r *UpdateItemRequest) Update() model.ItemUpdate {
	return model.ItemUpdate{
		Name:        r.Name,
		Description: r.Description,
	}
}

// MessageResponse is the body of successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateItemResponse also reports the id assigned to the new item.
type CreateItemResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
