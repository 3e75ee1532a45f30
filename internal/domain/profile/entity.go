package profile

import (
	"errors"
	"strings"

	"homefinder/internal/domain/document"
)

// Collection is where profiles are stored, keyed by session ID.
const Collection = "users"

const (
	FieldFullName    = "fullName"
	FieldPhoneNumber = "phoneNumber"
	FieldRole        = "role"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"

	DefaultRole = RoleBuyer
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole accepts "buyer" or "seller" in any case. Blank input yields DefaultRole.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return DefaultRole, nil
	case RoleBuyer:
		return RoleBuyer, nil
	case RoleSeller:
		return RoleSeller, nil
	default:
		return "", ErrInvalidRole
	}
}

type UserProfile struct {
	FullName    string
	PhoneNumber string
	Role        Role
}

func (p UserProfile) Record() document.Record {
	return document.Record{
		FieldFullName:    p.FullName,
		FieldPhoneNumber: p.PhoneNumber,
		FieldRole:        string(p.Role),
	}
}

func FromRecord(r document.Record) (UserProfile, error) {
	role, err := ParseRole(r.String(FieldRole))
	if err != nil {
		return UserProfile{}, err
	}
	return UserProfile{
		FullName:    r.String(FieldFullName),
		PhoneNumber: r.String(FieldPhoneNumber),
		Role:        role,
	}, nil
}
