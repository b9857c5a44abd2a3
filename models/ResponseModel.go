package models

// Common request and response models referenced by handler annotations

// ErrorResponse is used in @Failure for error responses
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid input"`
	Details string `json:"details,omitempty" example:""`
}

// MessageResponse is generic response for APIs that return only {"message": "..."}
type MessageResponse struct {
	Message string `json:"message" example:"Success"`
}

// SuccessResponse is used in @Success for generic success
type SuccessResponse struct {
	Message string      `json:"message" example:"Success"`
	Data    interface{} `json:"data,omitempty"`
}

// RegistryResponse is the response for the country / AFP option registries
type RegistryResponse struct {
	Options []string `json:"options"`
	Count   int      `json:"count" example:"14"`
}

// DescribeRequest is the request body for the AI description endpoint
type DescribeRequest struct {
	ProjectName string `json:"project_name" binding:"required" example:"Fiber Rollout Phase 2"`
}

// DescribeResponse is the response for the AI description endpoint
type DescribeResponse struct {
	Description string `json:"description"`
}

// AddOptionRequest is the request body for registry append endpoints
type AddOptionRequest struct {
	Value string `json:"value" binding:"required" example:"Panama"`
}
