package models

type Response struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Data         interface{}   `json:"data,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

type ErrorResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Error        string        `json:"error,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

// Notification is the toast a client shows after an action completes.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
}

const VariantDestructive = "destructive"
