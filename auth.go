package main

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"ecgtrack/models"

	"gorm.io/gorm"
)

// RegisterUser validates and inserts a new user. The existence pre-check is
// optimistic; the unique index on username is the real safety net for two
// registrations racing past the check.
func RegisterUser(ctx context.Context, username, password string, age int, gender string) (models.User, error) {
	username = strings.TrimSpace(username)
	gender = strings.TrimSpace(gender)
	if username == "" || password == "" || gender == "" || age <= 0 {
		return models.User{}, &ValidationError{Msg: "username, password, age and gender are required"}
	}
	tx, err := conn(ctx)
	if err != nil {
		return models.User{}, err
	}
	var existing models.User
	err = tx.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return models.User{}, &ConflictError{Msg: "username already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}
	user := models.User{Username: username, Password: password, Age: age, Gender: gender}
	if err := tx.Create(&user).Error; err != nil {
		if uniqueViolation(err) { // race loser after the pre-check
			return models.User{}, &ConflictError{Msg: "username already exists"}
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate matches username and password in a single equality query.
// A miss on either field yields the same error, so wrong username and wrong
// password are indistinguishable to the caller.
func Authenticate(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, &ValidationError{Msg: "username and password are required"}
	}
	tx, err := conn(ctx)
	if err != nil {
		return models.User{}, err
	}
	var user models.User
	if err := tx.Where("username = ? AND password = ?", username, password).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, &AuthenticationError{Msg: "invalid username or password"}
		}
		return models.User{}, err
	}
	return user, nil
}

// issueToken synthesizes the opaque bearer token: the user id concatenated
// with the issue time in unix millis. Not cryptographically verifiable; the
// mobile contract treats it as an opaque identifier only.
func issueToken(u models.User) string {
	return strconv.FormatUint(uint64(u.ID), 10) + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// ListUsers returns every user row. Passwords ride along; the /api/users/all
// route documents that as preserved legacy behavior.
func ListUsers(ctx context.Context) ([]models.User, error) {
	tx, err := conn(ctx)
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := tx.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
