package models

import "time"

// EcgResult is a single heart-rate reading belonging to a user.
// Tanggal/Waktu are server-assigned at insert time and stored as sortable
// strings (YYYY-MM-DD / HH:MM:SS) so history ordering is lexicographic.
// Rows are created and deleted, never updated in place.
type EcgResult struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Username  string    `gorm:"size:255;not null" json:"username"` // denormalized at time of recording
	Tanggal   string    `gorm:"size:10;not null" json:"tanggal"`
	Waktu     string    `gorm:"size:8;not null" json:"waktu"`
	Bpm       int       `gorm:"not null" json:"bpm"`
	Status    string    `gorm:"size:16;not null" json:"status"`
	Kondisi   string    `gorm:"size:128;not null" json:"kondisi"`
	CreatedAt time.Time `json:"created_at"`
}
