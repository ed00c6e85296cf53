package models

import "time"

// Policy - правила классификации поездок. Любое незаданное поле означает
// отсутствие ограничения, значения по умолчанию применяются в classifier.Resolve
type Policy struct {
	WorkHoursStart    *string   `json:"work_hours_start,omitempty" mapstructure:"work_hours_start"`
	WorkHoursEnd      *string   `json:"work_hours_end,omitempty" mapstructure:"work_hours_end"`
	WorkDays          []int     `json:"work_days,omitempty" mapstructure:"work_days"`
	Timezone          *string   `json:"timezone,omitempty" mapstructure:"timezone"`
	Offices           []Office  `json:"offices,omitempty" mapstructure:"offices"`
	AutoApproveKm     *float64  `json:"auto_approve_km,omitempty" mapstructure:"auto_approve_km"`
	PurposeRequiredKm *float64  `json:"purpose_required_km,omitempty" mapstructure:"purpose_required_km"`
	UpdatedAt         time.Time `json:"updated_at" mapstructure:"-"`
}

// Office - офис компании, используется для определения служебных поездок
type Office struct {
	Name         string   `json:"name" mapstructure:"name"`
	Latitude     float64  `json:"latitude" mapstructure:"latitude"`
	Longitude    float64  `json:"longitude" mapstructure:"longitude"`
	RadiusMeters *float64 `json:"radius_meters,omitempty" mapstructure:"radius_meters"`
}
