package types

import "time"

type UserType string

const (
	UserTypeVolunteer    UserType = "volunteer"
	UserTypeAdmin        UserType = "admin"
	UserTypeOrganization UserType = "social-organization"
)

type User struct {
	Email          string    `json:"email"`
	UserType       UserType  `json:"userType"`
	Name           string    `json:"name,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}
