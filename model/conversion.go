package model

import "time"

// Conversion is an archived notation text.
type Conversion struct {
	Id        string
	Source    string
	Text      string
	CreatedAt time.Time
}
