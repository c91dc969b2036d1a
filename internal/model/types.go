package model

// Chunk is one retrieved unit of source text used as grounding context.
type Chunk struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type AskRequest struct {
	Query string `json:"query"`
	Model string `json:"model,omitempty"`
	TopK  int    `json:"topK,omitempty"`
}

type AskResponse struct {
	Answer  string  `json:"answer"`
	Context []Chunk `json:"context"`
	Model   string  `json:"model,omitempty"`
}
