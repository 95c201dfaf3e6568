package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"ecgtrack/models"
	"ecgtrack/pkg/heart"

	"gorm.io/gorm"
)

// SaveResult records a reading. The date and time-of-day are stamped server
// side at the moment of insertion; the caller supplies only the measurement.
func SaveResult(ctx context.Context, userID uint, username string, bpm int) (models.EcgResult, error) {
	username = strings.TrimSpace(username)
	if userID == 0 || username == "" || bpm == 0 {
		return models.EcgResult{}, &ValidationError{Msg: "userId, username and bpm are required"}
	}
	tx, err := conn(ctx)
	if err != nil {
		return models.EcgResult{}, err
	}
	now := time.Now()
	status, kondisi := heart.Classify(bpm)
	result := models.EcgResult{
		UserID:   userID,
		Username: username,
		Tanggal:  now.Format("2006-01-02"),
		Waktu:    now.Format("15:04:05"),
		Bpm:      bpm,
		Status:   status,
		Kondisi:  kondisi,
	}
	if err := tx.Create(&result).Error; err != nil {
		return models.EcgResult{}, err
	}
	return result, nil
}

// History returns all readings for a user, most recent first: date descending
// with ties broken by time-of-day, not by primary key. An empty history is a
// valid result, not an error.
func History(ctx context.Context, userID uint) ([]models.EcgResult, error) {
	tx, err := conn(ctx)
	if err != nil {
		return nil, err
	}
	results := []models.EcgResult{}
	if err := tx.Where("user_id = ?", userID).Order("tanggal DESC, waktu DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// PurgeHistory deletes every reading owned by the user and reports how many
// were deleted along with the count beforehand. Zero rows is a valid success
// as long as the user exists.
func PurgeHistory(ctx context.Context, userID uint) (deleted, previous int64, err error) {
	tx, err := conn(ctx)
	if err != nil {
		return 0, 0, err
	}
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, &NotFoundError{Msg: "user not found"}
		}
		return 0, 0, err
	}
	if err := tx.Model(&models.EcgResult{}).Where("user_id = ?", userID).Count(&previous).Error; err != nil {
		return 0, 0, err
	}
	res := tx.Where("user_id = ?", userID).Delete(&models.EcgResult{})
	if res.Error != nil {
		return 0, previous, res.Error
	}
	return res.RowsAffected, previous, nil
}

// DeleteRecord removes a single reading. Ownership is enforced as part of
// existence: a valid record id under the wrong user is indistinguishable from
// a missing record, so cross-user deletion is impossible.
func DeleteRecord(ctx context.Context, userID, id uint) (uint, error) {
	tx, err := conn(ctx)
	if err != nil {
		return 0, err
	}
	res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.EcgResult{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, &NotFoundError{Msg: "record not found"}
	}
	return id, nil
}
