package apimodels

type Response struct {
	Status  string      `json:"status"`            //request result fail/success
	Message string      `json:"message,omitempty"` //error message
	Data    interface{} `json:"data,omitempty"`    //response payload
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}
