package services

import (
	"math"
	"time"

	"fleetadmin/internal/models"
)

const (
	millisPerDay = 1000 * 60 * 60 * 24

	// ActivityWindowDays splits active from inactive drivers. A driver exactly
	// on the window is in neither list.
	ActivityWindowDays = 7
)

type ActivityReport struct {
	Active   []models.Driver
	Inactive []models.Driver
}

// DaysSince rounds the elapsed time from updatedAt to ref up to whole days.
func DaysSince(updatedAt, ref time.Time) int64 {
	ms := ref.Sub(updatedAt).Milliseconds()
	return int64(math.Ceil(float64(ms) / millisPerDay))
}

// Classify partitions drivers by the age of their last update relative to ref.
// Input order is kept within each list.
func Classify(drivers []models.Driver, ref time.Time) ActivityReport {
	report := ActivityReport{
		Active:   make([]models.Driver, 0),
		Inactive: make([]models.Driver, 0),
	}
	for _, d := range drivers {
		switch days := DaysSince(d.UpdatedAt, ref); {
		case days < ActivityWindowDays:
			report.Active = append(report.Active, d)
		case days > ActivityWindowDays:
			report.Inactive = append(report.Inactive, d)
		}
	}
	return report
}

func PaymentSummaries(drivers []models.Driver) []models.DriverPaymentSummary {
	out := make([]models.DriverPaymentSummary, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, models.DriverPaymentSummary{
			ID:       d.ID,
			UniqueID: d.UniqueID,
			Payment:  d.Payment,
		})
	}
	return out
}
