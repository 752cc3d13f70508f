package response

// Envelope wraps API payloads. Success responses carry Data; failed runs
// carry the failure message in Error.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
