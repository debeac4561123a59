// Package entity contains the core business objects of the platform.
package entity

import "time"

// Gender is the two-valued gender enum used on user profiles.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// User is the identity record of the platform. The JSON tags double as the
// storage format of users.json and the wire format of API responses; the
// password hash is stripped before a user ever leaves the server.
type User struct {
	ID                int64     `json:"id"`
	Email             string    `json:"email"`
	Password          string    `json:"password,omitempty"` // bcrypt hash, never serialized to clients
	Name              string    `json:"name"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	DateOfBirth       string    `json:"dateOfBirth"`
	Gender            Gender    `json:"gender"`
	CityID            int64     `json:"cityId"`
	AvatarURL         string    `json:"avatarUrl"`
	DateOfRegistration time.Time `json:"dateOfRegistration"`
	LastLoginDatetime  time.Time `json:"lastLoginDatetime"`
}

// WithoutPassword returns a copy of the user safe to serialize to clients.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
