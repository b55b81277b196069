package models

type AddToCartRequest struct {
	FlavorID  int    `json:"flavor_id" form:"flavor_id" binding:"required"`
	Size      string `json:"size" form:"size"`
	Container string `json:"container" form:"container"`
	Quantity  int    `json:"quantity" form:"quantity" binding:"omitempty,min=0,max=99"`
}

type QuoteRequest struct {
	FlavorID  int    `json:"flavor_id" form:"flavor_id" binding:"required"`
	Size      string `json:"size" form:"size"`
	Container string `json:"container" form:"container"`
	Quantity  int    `json:"quantity" form:"quantity" binding:"omitempty,min=0,max=99"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" form:"quantity" binding:"required,max=99"`
}

type CheckoutRequest struct {
	Name      string `json:"name" form:"name"`
	Phone     string `json:"phone" form:"phone"`
	Email     string `json:"email" form:"email"`
	Notes     string `json:"notes" form:"notes"`
	OrderType string `json:"order_type" form:"order_type"`
}

type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}
