// Package perenual provides a client for the Perenual plant species API.
package perenual

import "time"

// Config holds configuration for the Perenual API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://perenual.com")
	Timeout time.Duration // HTTP request timeout
}
