package handler

type RepurposeRequest struct {
	Content   string `json:"content"`
	Format    string `json:"format"`
	Audience  string `json:"audience"`
	Tone      string `json:"tone"`
	Length    int    `json:"length"`
	NumSlides int    `json:"num_slides"`
}

type RepurposeResponse struct {
	Format    string   `json:"format"`
	Result    string   `json:"result"`
	Tweets    []string `json:"tweets,omitempty"`
	ModelUsed string   `json:"model_used"`
}

type FormatResponse struct {
	Name        string         `json:"name"`
	DisplayName string         `json:"display_name"`
	Available   bool           `json:"available"`
	Defaults    map[string]any `json:"defaults,omitempty"`
}

type JobRequest struct {
	Content   string `json:"content"`
	Format    string `json:"format"`
	Audience  string `json:"audience"`
	Tone      string `json:"tone"`
	Length    int    `json:"length"`
	NumSlides int    `json:"num_slides"`
}

type JobResponse struct {
	ID        int64  `json:"id"`
	Format    string `json:"format"`
	Status    string `json:"status"`
	Result    string `json:"result,omitempty"`
	ModelUsed string `json:"model_used,omitempty"`
	CreatedAt string `json:"created_at"`
}

type JobListResponse struct {
	Jobs   []JobResponse `json:"jobs"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
