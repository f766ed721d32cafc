package dto

type InstanceResponse struct {
	ID   int    `json:"id"`
	Data string `json:"data"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
