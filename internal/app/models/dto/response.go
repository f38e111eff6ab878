package dto

// MissingFieldResponse is the body returned for MissingField errors
type MissingFieldResponse struct {
	ErrorCode    string `json:"error_code" example:"STUDENT001"`
	ErrorMessage string `json:"error_message" example:"Roll Number is required"`
}

// HealthResponse reports service and database status
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}
