package db_models

import "github.com/lib/pq"

type Package struct {
	BaseModel
	Title        string
	Destination  string
	Description  string
	Duration     int
	Price        int
	Rating       float64
	MaxTravelers int
	BookingCount int
	IsActive     bool
	AgencyName   string
	Images       pq.StringArray `gorm:"type:text[]"`
	Includes     pq.StringArray `gorm:"type:text[]"`
}
