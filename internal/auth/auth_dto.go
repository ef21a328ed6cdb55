package auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func toResponse(u SessionUser) AuthResponse {
	return AuthResponse{ID: u.ID, Email: u.Email}
}
