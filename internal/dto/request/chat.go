package request

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Body        string `json:"body" validate:"required,min=1,max=2000"`
}
