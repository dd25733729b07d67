package chat

type SendMessageDTO struct {
	ProjectID *string `json:"projectId"`
	Content   string  `json:"content"`
}
