package domain

import "time"

// Preferences - пользовательские настройки клиента
type Preferences struct {
	ClientID  string    `json:"client_id" db:"client_id"`
	DarkMode  bool      `json:"dark_mode" db:"dark_mode"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
