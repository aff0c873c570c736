package models

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func SuccessResponse(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}

func ErrorResponse(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}
