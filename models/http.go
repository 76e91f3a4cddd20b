// Package models defines the domain entities (users, 3D models, ratings),
// authentication tokens, and the request/response shapes of the REST API.
package models

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login: a signed token plus
// the public view of the authenticated user.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Pagination carries page metadata alongside a model listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ModelListResponse is the body of GET /api/models.
type ModelListResponse struct {
	Models     []Model3D  `json:"models"`
	Pagination Pagination `json:"pagination"`
}

// RateRequest is the JSON body of POST /api/models/{id}/rate.
// Value must be an integer in [1,5]; anything else is rejected with 400
// before any persistence call.
type RateRequest struct {
	Value int `json:"value"`
}

// ErrorResponse is the uniform error body returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every validation message for a rejected
// request body, e.g. a registration with both a bad email and a short password.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// MessageResponse is a simple confirmation body (e.g. after a delete).
type MessageResponse struct {
	Message string `json:"message"`
}
