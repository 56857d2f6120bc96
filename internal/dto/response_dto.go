package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message   string   `json:"message"`
	Details   []string `json:"details,omitempty"`
	Retryable bool     `json:"retryable,omitempty"`
	// Score is set when the test was already completed.
	Score *int `json:"score,omitempty"`
	// AvailableOn and Countdown are set when a test is not open yet.
	AvailableOn string `json:"available_on,omitempty"`
	Countdown   string `json:"countdown,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
