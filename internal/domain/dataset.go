package domain

import "time"

// Dataset - неизменяемый снимок загруженных данных
type Dataset struct {
	Version     string       `json:"version"`
	LoadedAt    time.Time    `json:"loaded_at"`
	Restaurants []Restaurant `json:"-"`
}

// FindByID ищет заведение по detail URL
func (d *Dataset) FindByID(id string) (Restaurant, bool) {
	if d == nil {
		return Restaurant{}, false
	}
	for _, r := range d.Restaurants {
		if r.DetailsURL == id {
			return r, true
		}
	}
	return Restaurant{}, false
}

// DatasetStatus - состояние загрузчика данных
type DatasetStatus struct {
	Loading  bool       `json:"loading"`
	Error    string     `json:"error,omitempty"`
	Version  string     `json:"version,omitempty"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
	Total    int        `json:"total"`
}

// DatasetLoad - запись журнала загрузок набора данных
type DatasetLoad struct {
	ID          int64     `json:"id" db:"id"`
	Version     string    `json:"version" db:"version"`
	Source      string    `json:"source" db:"source"`
	RecordCount int       `json:"record_count" db:"record_count"`
	Error       *string   `json:"error,omitempty" db:"error"`
	DurationMS  int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
