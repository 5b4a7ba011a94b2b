package domain

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type ListDrawsRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

type BackfillResponse struct {
	Ingested int `json:"ingested"`
}

type AdminLoginRequest struct {
	Secret string `json:"secret" validate:"required"`
}
