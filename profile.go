package main

import (
	"context"
	"errors"
	"strings"

	"ecgtrack/models"

	"gorm.io/gorm"
)

// GetProfile loads a user's public profile by id.
func GetProfile(ctx context.Context, userID uint) (models.User, error) {
	tx, err := conn(ctx)
	if err != nil {
		return models.User{}, err
	}
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, &NotFoundError{Msg: "user not found"}
		}
		return models.User{}, err
	}
	return user, nil
}

// UpdateProfile mutates a user's profile fields. Two password paths exist:
// a direct replacement via password, or oldPassword+newPassword where the
// old value must equal the stored one before the new value is accepted.
// updated_at refreshes on every successful update.
func UpdateProfile(ctx context.Context, userID uint, username string, age int, gender, password, oldPassword, newPassword string) (models.User, error) {
	username = strings.TrimSpace(username)
	gender = strings.TrimSpace(gender)
	if userID == 0 || username == "" || gender == "" || age <= 0 {
		return models.User{}, &ValidationError{Msg: "userId, username, age and gender are required"}
	}
	tx, err := conn(ctx)
	if err != nil {
		return models.User{}, err
	}
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, &NotFoundError{Msg: "user not found"}
		}
		return models.User{}, err
	}

	// uniqueness check excludes the user's own row
	var taken models.User
	err = tx.Where("username = ? AND id <> ?", username, userID).First(&taken).Error
	if err == nil {
		return models.User{}, &ConflictError{Msg: "username already taken"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	switch {
	case oldPassword != "" || newPassword != "":
		if oldPassword == "" || newPassword == "" {
			return models.User{}, &ValidationError{Msg: "oldPassword and newPassword are both required to change password"}
		}
		if oldPassword != user.Password { // plaintext equality, wire parity
			return models.User{}, &ValidationError{Msg: "old password does not match"}
		}
		user.Password = newPassword
	case password != "":
		user.Password = password
	}

	user.Username = username
	user.Age = age
	user.Gender = gender
	if err := tx.Save(&user).Error; err != nil {
		if uniqueViolation(err) {
			return models.User{}, &ConflictError{Msg: "username already taken"}
		}
		return models.User{}, err
	}
	return user, nil
}
