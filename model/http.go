package model

type RenderRequestBody struct {
	Notation string  `json:"notation"`
	Volume   int     `json:"volume,omitempty"`
	Tempo    float64 `json:"tempo,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
