package gateway

import (
	"context"
	"errors"
)

// RoleVeterinarian is the role name the Auth service assigns to
// veterinarians.
const RoleVeterinarian = "veterinarian"

var (
	// ErrUnauthorized means the forwarded bearer token was rejected upstream.
	ErrUnauthorized = errors.New("upstream service rejected the token")
	// ErrUnavailable covers timeouts and non-2xx responses other than 404/401.
	ErrUnavailable = errors.New("upstream service unavailable")
)

// User is the subset of the Auth service's user record this service needs.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Pet is the subset of the Patients service's pet record this service needs.
// OwnerEmail identifies the registered owner.
type Pet struct {
	ID         int     `json:"pet_id"`
	Name       string  `json:"pet_name"`
	Species    string  `json:"species"`
	Breed      string  `json:"breed"`
	Age        int     `json:"age"`
	Weight     float64 `json:"weight"`
	Gender     string  `json:"gender"`
	OwnerEmail string  `json:"owner"`
}

// AuthService resolves users and verifies the veterinarian role against the
// remote Auth service. A nil user with nil error means not found.
type AuthService interface {
	GetUserByID(ctx context.Context, userID int, bearer string) (*User, error)
	VerifyVeterinarianRole(ctx context.Context, userID int, bearer string) (bool, error)
}

// PatientsService resolves pets and verifies ownership against the remote
// Patients service. A nil pet with nil error means not found.
type PatientsService interface {
	GetPetByID(ctx context.Context, petID int, bearer string) (*Pet, error)
	VerifyPetOwnership(ctx context.Context, petID int, ownerEmail, bearer string) (bool, error)
}
