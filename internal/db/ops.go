package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
)

var (
	ErrInsertFailed = errors.New("insert operation failed")
	ErrSelectFailed = errors.New("select operation failed")
	ErrUpdateFailed = errors.New("update operation failed")
	ErrDeleteFailed = errors.New("delete operation failed")
	ErrNotFound     = errors.New("record not found")
)

func (db *DB) InsertReading(ctx context.Context, r Reading) (int64, error) {
	const fn = "DB:InsertReading"
	var id int64
	err := withRetry(ctx, func() error {
		return db.pool.QueryRow(ctx, `
			INSERT INTO readings (
				device_id,
				air,
				temperature,
				humidity,
				co,
				timestamp
			) VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, r.DeviceID, r.Air, r.Temperature, r.Humidity, r.CO, r.Timestamp).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return id, nil
}

func (db *DB) InsertNotification(ctx context.Context, n Notification) (int64, error) {
	const fn = "DB:InsertNotification"
	var id int64
	err := withRetry(ctx, func() error {
		return db.pool.QueryRow(ctx, `
			INSERT INTO notifications (
				condition,
				device_id,
				timestamp,
				message
			) VALUES ($1, $2, $3, $4)
			RETURNING id
		`, n.Condition, n.DeviceID, n.Timestamp, n.Message).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return id, nil
}

// LatestReading breaks timestamp ties on the most recently inserted row.
func (db *DB) LatestReading(ctx context.Context, deviceID string) (Reading, error) {
	const fn = "DB:LatestReading"
	var r Reading
	err := pgxscan.Get(ctx, db.pool, &r, `
		SELECT
			id,
			device_id,
			air,
			temperature,
			humidity,
			co,
			timestamp
		FROM readings
		WHERE device_id = $1
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	`, deviceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Reading{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Reading{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return r, nil
}

func (db *DB) RecentReadings(ctx context.Context, deviceID string, limit int) ([]Reading, error) {
	const fn = "DB:RecentReadings"
	var readings []Reading
	err := pgxscan.Select(ctx, db.pool, &readings, `
		SELECT
			id,
			device_id,
			air,
			temperature,
			humidity,
			co,
			timestamp
		FROM readings
		WHERE device_id = $1
		ORDER BY timestamp DESC, id DESC
		LIMIT $2
	`, deviceID, limit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []Reading{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return readings, nil
}

func (db *DB) ListReadings(ctx context.Context) ([]Reading, error) {
	const fn = "DB:ListReadings"
	var readings []Reading
	err := pgxscan.Select(ctx, db.pool, &readings, `
		SELECT
			id,
			device_id,
			air,
			temperature,
			humidity,
			co,
			timestamp
		FROM readings
		ORDER BY id ASC
	`)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []Reading{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return readings, nil
}

func (db *DB) NotificationsSince(ctx context.Context, deviceID string, since time.Time) ([]Notification, error) {
	const fn = "DB:NotificationsSince"
	var notifications []Notification
	err := pgxscan.Select(ctx, db.pool, &notifications, `
		SELECT
			id,
			condition,
			device_id,
			timestamp,
			message
		FROM notifications
		WHERE device_id = $1
		AND timestamp >= $2
		ORDER BY timestamp ASC, id ASC
	`, deviceID, since)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []Notification{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return notifications, nil
}

func (db *DB) ListNotifications(ctx context.Context) ([]Notification, error) {
	const fn = "DB:ListNotifications"
	var notifications []Notification
	err := pgxscan.Select(ctx, db.pool, &notifications, `
		SELECT
			id,
			condition,
			device_id,
			timestamp,
			message
		FROM notifications
		ORDER BY id ASC
	`)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []Notification{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return notifications, nil
}

func (db *DB) InsertDevice(ctx context.Context, d Device) (int64, error) {
	const fn = "DB:InsertDevice"
	var id int64
	err := withRetry(ctx, func() error {
		return db.pool.QueryRow(ctx, `
			INSERT INTO devices (
				device_id,
				name,
				location
			) VALUES ($1, $2, $3)
			RETURNING id
		`, d.DeviceID, d.Name, d.Location).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return id, nil
}

func (db *DB) GetDevice(ctx context.Context, deviceID string) (Device, error) {
	const fn = "DB:GetDevice"
	var d Device
	err := pgxscan.Get(ctx, db.pool, &d, `
		SELECT
			id,
			device_id,
			name,
			location
		FROM devices
		WHERE device_id = $1
	`, deviceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Device{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Device{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return d, nil
}

func (db *DB) ListDevices(ctx context.Context) ([]Device, error) {
	const fn = "DB:ListDevices"
	var devices []Device
	err := pgxscan.Select(ctx, db.pool, &devices, `
		SELECT
			id,
			device_id,
			name,
			location
		FROM devices
		ORDER BY id ASC
	`)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []Device{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return devices, nil
}

func (db *DB) UpdateDevice(ctx context.Context, d Device) error {
	const fn = "DB:UpdateDevice"
	var tag int64
	err := withRetry(ctx, func() error {
		ct, err := db.pool.Exec(ctx, `
			UPDATE devices
			SET name = $2, location = $3
			WHERE device_id = $1
		`, d.DeviceID, d.Name, d.Location)
		if err != nil {
			return err
		}
		tag = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	if tag == 0 {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return nil
}

func (db *DB) DeleteDevice(ctx context.Context, deviceID string) error {
	const fn = "DB:DeleteDevice"
	var tag int64
	err := withRetry(ctx, func() error {
		ct, err := db.pool.Exec(ctx, `
			DELETE FROM devices
			WHERE device_id = $1
		`, deviceID)
		if err != nil {
			return err
		}
		tag = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	if tag == 0 {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return nil
}
