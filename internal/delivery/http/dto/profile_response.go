package dto

import domprofile "homefinder/internal/domain/profile"

type ProfileResponse struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

func NewProfileResponse(p domprofile.UserProfile) ProfileResponse {
	return ProfileResponse{
		FullName:    p.FullName,
		PhoneNumber: p.PhoneNumber,
		Role:        string(p.Role),
	}
}
