package dto

type TranscriptionResponse struct {
	Text string `json:"text"`
}
