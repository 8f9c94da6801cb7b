package response

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Error struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

func NewError(code, message string) Error {
	return Error{Error: ErrorBody{Code: code, Message: message}}
}
