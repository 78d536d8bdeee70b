package model

type ConvertResponse struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
