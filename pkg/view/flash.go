package view

type FlashKind string

const (
	FlashInfo    FlashKind = "info"
	FlashSuccess FlashKind = "success"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot toast shown after a redirect.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Title   string    `json:"title,omitempty"`
	Message string    `json:"message"`
}
