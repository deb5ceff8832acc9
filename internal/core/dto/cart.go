package dto

type AddCartItemRequest struct {
	Name string `json:"name" binding:"required"`
}
