package api

type IngestReadingRequest struct {
	DeviceID    string   `json:"device_id"`
	Air         *float64 `json:"air"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	CO          *float64 `json:"co"`
	Timestamp   string   `json:"timestamp,omitempty"`
}

type IngestReadingResponse struct {
	ReadingID           string   `json:"reading_id"`
	Notifications       []string `json:"notifications,omitempty"`
	FailedNotifications []string `json:"failed_notifications,omitempty"`
}

type ReadingResponse struct {
	ID          string  `json:"id"`
	DeviceID    string  `json:"device_id"`
	Air         float64 `json:"air"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	CO          float64 `json:"co"`
	Timestamp   string  `json:"timestamp"`
}

type ListReadingsResponse struct {
	Readings []ReadingResponse `json:"readings"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Condition string `json:"condition"`
	DeviceID  string `json:"device_id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

type CreateNotificationRequest struct {
	Condition string `json:"condition"`
	DeviceID  string `json:"device_id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

type CreateNotificationResponse struct {
	NotificationID string `json:"notification_id"`
}

type DailyAverageEntry struct {
	Day         string  `json:"day"`
	Air         float64 `json:"air"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	CO          float64 `json:"co"`
}

type DeviceRequest struct {
	DeviceID string `json:"device_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type DeviceResponse struct {
	ID       string `json:"id"`
	DeviceID string `json:"device_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type CreateDeviceResponse struct {
	DeviceID string `json:"device_id"`
}

type ListDevicesResponse struct {
	Devices []DeviceResponse `json:"devices"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
