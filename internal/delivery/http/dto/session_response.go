package dto

type SessionViewResponse struct {
	View      string `json:"view"`
	SessionID string `json:"session_id,omitempty"`
}
