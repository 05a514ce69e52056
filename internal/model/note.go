package model

import "time"

// MaxNameLen bounds a note name, counted in runes.
const MaxNameLen = 30

// Note is a single user-authored text entry.
// ID never changes after creation; LastModified tracks content edits only.
type Note struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"lastModified"`
}

// BoundName cuts s down to MaxNameLen runes.
func BoundName(s string) string {
	r := []rune(s)
	if len(r) <= MaxNameLen {
		return s
	}
	return string(r[:MaxNameLen])
}
