package model

// Config carries the settings shared by every command.
type Config struct {
	APIBaseURL string
	ESURL      string
}
