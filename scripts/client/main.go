// Demo client: registers a device, posts a handful of readings (some
// breaching), then prints the latest reading, the trailing window, and
// today's notifications.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBase = "http://localhost:8080/airsentry/api/v1"

func main() {
	base := os.Getenv("API_BASE_URL")
	if base == "" {
		base = defaultBase
	}
	client := resty.New().SetBaseURL(base)

	deviceID := "demo-d1"
	resp, err := client.R().
		SetBody(map[string]string{"device_id": deviceID, "name": "Demo sensor", "location": "Lab"}).
		Post("/devices")
	if err != nil {
		panic(err)
	}
	fmt.Printf("create device: %s %s\n", resp.Status(), resp.String())

	now := time.Now()
	readings := []map[string]any{
		{"device_id": deviceID, "air": 50, "temperature": 22, "humidity": 40, "co": 10},
		{"device_id": deviceID, "air": 150, "temperature": 20, "humidity": 50, "co": 10},
		{"device_id": deviceID, "air": 50, "temperature": 35, "humidity": 80, "co": 120,
			"timestamp": now.Add(-time.Hour).Format("2006-01-02 15:04:05")},
	}
	for _, r := range readings {
		resp, err := client.R().SetBody(r).Post("/readings")
		if err != nil {
			panic(err)
		}
		fmt.Printf("ingest: %s %s\n", resp.Status(), resp.String())
	}

	for _, path := range []string{
		"/readings/" + deviceID,
		"/readings/averages/" + deviceID,
		"/notifications/" + deviceID,
	} {
		resp, err := client.R().Get(path)
		if err != nil {
			panic(err)
		}
		fmt.Printf("GET %s: %s %s\n", path, resp.Status(), resp.String())
	}
}
