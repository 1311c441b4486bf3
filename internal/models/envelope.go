package models

// Envelope is the uniform response wrapper used by every API endpoint.
// status_code carries the application-level result (200/400/500); the HTTP
// transport status stays 200. Data is an empty string on failures.
type Envelope struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}
