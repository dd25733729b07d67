package generation

type AudioFile struct {
	Key         string `json:"key"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type UploadResponse struct {
	ProjectID string    `json:"project_id"`
	Audio     AudioFile `json:"audio"`
	Status    string    `json:"status"`
}

type TranscriptionRequest struct {
	Text string `json:"text"`
}

type GenerateResponse struct {
	ProjectID  string `json:"project_id"`
	Flashcards int    `json:"flashcards_added"`
	Quizzes    int    `json:"quizzes_added"`
}
