package notepad

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/idilsaglam/notepad/internal/model"
)

// Slot keys. They match the browser widget's localStorage keys so exported data moves over as is.
const (
	KeyNotes    = "notepadFiles"
	KeyTextSize = "textSize"
)

// legacySavedLayout is what the widget wrote into "lastSaved" (en-US toLocaleString).
const legacySavedLayout = "1/2/2006, 3:04:05 PM"

// Newer ICU builds put a narrow no-break space before AM/PM.
var legacySpaces = strings.NewReplacer("\u202f", " ", "\u00a0", " ")

type wireNote struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Content      string     `json:"content"`
	LastModified *time.Time `json:"lastModified,omitempty"`
	LastSaved    string     `json:"lastSaved,omitempty"`
}

func encodeNotes(notes []model.Note) (string, error) {
	wire := make([]wireNote, 0, len(notes))
	for _, n := range notes {
		ts := n.LastModified
		wire = append(wire, wireNote{
			ID:           n.ID,
			Name:         n.Name,
			Content:      n.Content,
			LastModified: &ts,
		})
	}
	b, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// decodeNotes parses a persisted note list. Entries without an id, or repeating
// an earlier id, are skipped and counted in dropped.
func decodeNotes(raw string) (notes []model.Note, dropped int, err error) {
	var wire []wireNote
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, 0, fmt.Errorf("json unmarshal: %w", err)
	}

	seen := make(map[string]struct{}, len(wire))
	notes = make([]model.Note, 0, len(wire))
	for _, w := range wire {
		if w.ID == "" {
			dropped++
			continue
		}
		if _, dup := seen[w.ID]; dup {
			dropped++
			continue
		}
		seen[w.ID] = struct{}{}

		n := model.Note{ID: w.ID, Name: w.Name, Content: w.Content}
		switch {
		case w.LastModified != nil:
			n.LastModified = *w.LastModified
		case w.LastSaved != "":
			if t, err := time.ParseInLocation(legacySavedLayout, legacySpaces.Replace(w.LastSaved), time.Local); err == nil {
				n.LastModified = t
			}
		}
		notes = append(notes, n)
	}
	return notes, dropped, nil
}

func encodeFontSize(n int) string {
	return strconv.Itoa(n)
}

// decodeFontSize parses a stored size and clamps it into range.
func decodeFontSize(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	return model.ClampFontSize(n), nil
}
