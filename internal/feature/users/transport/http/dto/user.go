// Package dto defines data transfer objects for the users feature's HTTP
// transport layer, decoupling the wire shapes from the storage entities.
package dto

import "plantcare_backend/internal/feature/users/domain/entity"

// CreateUserReq represents the request body for the /user/create endpoint.
// Field validation (empty fields, embedded whitespace) is performed by the
// service, not by binding tags, so that violations map to the documented
// error kind.
type CreateUserReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UpdateUserReq represents the request body for the /user/update endpoint.
// Only the fields listed here are overwritten; id, key and created_at are
// immutable.
type UpdateUserReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ToEntity maps the update request onto a user entity carrying only the
// mutable fields.
func (r UpdateUserReq) ToEntity() *entity.User {
	return &entity.User{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// UserResponse is the wire representation of a stored user.
// The password is included to match the established API contract, even
// though exposing it is a known weakness of that contract.
type UserResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CreatedAt string `json:"created_at"`
	Key       string `json:"key"`
}

// UserResponseFromEntity maps a stored user entity to its wire
// representation, field by field.
func UserResponseFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		Key:       u.Key,
	}
}
