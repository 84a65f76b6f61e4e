package db

import "time"

type Reading struct {
	ID          int64     `db:"id" json:"id"`
	DeviceID    string    `db:"device_id" json:"device_id"`
	Air         float64   `db:"air" json:"air"`
	Temperature float64   `db:"temperature" json:"temperature"`
	Humidity    float64   `db:"humidity" json:"humidity"`
	CO          float64   `db:"co" json:"co"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
}

type Notification struct {
	ID        int64     `db:"id" json:"id"`
	Condition string    `db:"condition" json:"condition"`
	DeviceID  string    `db:"device_id" json:"device_id"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
	Message   string    `db:"message" json:"message"`
}

type Device struct {
	ID       int64  `db:"id" json:"id"`
	DeviceID string `db:"device_id" json:"device_id"`
	Name     string `db:"name" json:"name"`
	Location string `db:"location" json:"location"`
}
