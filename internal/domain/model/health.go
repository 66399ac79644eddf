package model

// HealthMetric is a dated set of body measurements. All measurement fields are
// optional; a zero pointer means the value was not recorded that day.
type HealthMetric struct {
	ID         string
	UserID     string
	Date       string
	Weight     *float64 // kg
	Systolic   *int
	Diastolic  *int
	HeartRate  *int // bpm
	SleepHours *float64
	Notes      string
}

// HasBloodPressure reports whether both pressure readings were recorded.
func (m HealthMetric) HasBloodPressure() bool {
	return m.Systolic != nil && m.Diastolic != nil
}

// Exercise is a single logged workout session.
type Exercise struct {
	ID             string
	UserID         string
	Date           string
	Type           string
	DurationMin    int
	CaloriesBurned int
	Notes          string
}
