package dto

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	SessionID   string `json:"session_id"`
	Email       string `json:"email"`
	View        string `json:"view"`
}

type LoginErrorResponse struct {
	View  string `json:"view"`
	Error string `json:"error"`
}
