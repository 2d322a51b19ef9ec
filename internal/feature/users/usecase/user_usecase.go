package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"

	"plantcare_backend/internal/feature/users/domain/entity"
)

// createdAtLayout is the format of the creation timestamp stored on a user.
const createdAtLayout = "2006-01-02 15:04:05"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user to storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user with the given email address.
	// It returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByCredentials retrieves the user matching both email and password
	// in a single compound-equality lookup.
	// It returns ErrUserNotFound if no such user exists.
	FindByCredentials(ctx context.Context, email, password string) (*entity.User, error)

	// FindByKey retrieves the user with the given access key.
	// It returns ErrUserNotFound if no such user exists.
	FindByKey(ctx context.Context, key string) (*entity.User, error)

	// Update persists the current state of an already-loaded user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes an already-loaded user from storage.
	Delete(ctx context.Context, user *entity.User) error
}

// userUsecase implements the account business logic.
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// hasWhitespace reports whether s contains any whitespace character.
func hasWhitespace(s string) bool {
	return strings.ContainsAny(s, " \t\r\n")
}

// validateNewUser checks that no field is empty or contains embedded
// whitespace. The password is checked first so that its dedicated message
// wins when both conditions hold.
func validateNewUser(firstName, lastName, email, password string) error {
	if hasWhitespace(password) {
		return fmt.Errorf("%w: spaces are not allowed in the password", ErrInvalidCredentials)
	}
	if hasWhitespace(firstName) || hasWhitespace(lastName) || hasWhitespace(email) {
		return fmt.Errorf("%w: whitespace is not allowed", ErrInvalidCredentials)
	}
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return fmt.Errorf("%w: all fields must be filled out", ErrInvalidCredentials)
	}
	return nil
}

// accessKey derives the opaque access key for a new account as the
// hex-encoded SHA3-256 digest of the identity fields and the creation
// timestamp (with its inner space removed).
func accessKey(firstName, lastName, email, createdAt string) string {
	input := firstName + lastName + email + strings.ReplaceAll(createdAt, " ", "")
	sum := sha3.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Create registers a new account and returns the stored user, including the
// storage-assigned ID and the derived access key.
func (u *userUsecase) Create(ctx context.Context, firstName, lastName, email, password string) (*entity.User, error) {
	if err := validateNewUser(firstName, lastName, email, password); err != nil {
		return nil, err
	}

	// Check-then-insert on email uniqueness. The unique index on the email
	// column backstops the race between concurrent creations.
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	createdAt := time.Now().Format(createdAtLayout)
	user := &entity.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		CreatedAt: createdAt,
		Key:       accessKey(firstName, lastName, email, createdAt),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn looks up the user matching both email and password.
func (u *userUsecase) SignIn(ctx context.Context, email, password string) (*entity.User, error) {
	return u.users.FindByCredentials(ctx, email, password)
}

// Get retrieves the user identified by the given access key.
func (u *userUsecase) Get(ctx context.Context, key string) (*entity.User, error) {
	return u.users.FindByKey(ctx, key)
}

// Update overwrites the mutable fields (names, email, password) of the user
// identified by key. ID, access key and creation timestamp are never
// modified. A changed email address is re-checked for uniqueness.
func (u *userUsecase) Update(ctx context.Context, key string, updated *entity.User) (*entity.User, error) {
	user, err := u.users.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if updated.Email != user.Email {
		if _, err := u.users.FindByEmail(ctx, updated.Email); err == nil {
			return nil, ErrDuplicateUser
		} else if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
	}

	user.FirstName = updated.FirstName
	user.LastName = updated.LastName
	user.Email = updated.Email
	user.Password = updated.Password
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user identified by key and returns the record as it
// existed before deletion.
func (u *userUsecase) Delete(ctx context.Context, key string) (*entity.User, error) {
	user, err := u.users.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := u.users.Delete(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
