package models

// Profile is the editable user record shared by both roles. It is held in
// memory only and never mirrored.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}
