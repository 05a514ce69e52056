package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/notepad/internal/errs"
	"github.com/idilsaglam/notepad/internal/model"
)

// resolve finds the note ref points at: a 1-based position, a full id or a unique id prefix.
func resolve(notes []model.Note, ref string) (model.Note, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Note{}, errs.New(errs.InvalidArgument, "empty note reference")
	}

	for _, n := range notes {
		if n.ID == ref {
			return n, nil
		}
	}

	// An in-range number is a position; out of range it may still prefix a numeric id.
	i, err := strconv.Atoi(ref)
	isIndex := err == nil
	if isIndex && i >= 1 && i <= len(notes) {
		return notes[i-1], nil
	}

	var matches []model.Note
	for _, n := range notes {
		if strings.HasPrefix(n.ID, ref) {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		if isIndex {
			return model.Note{}, errs.New(errs.NotFound,
				fmt.Sprintf("index out of range: have %d, got %d", len(notes), i))
		}
		return model.Note{}, errs.New(errs.NotFound, fmt.Sprintf("no note matches %q", ref))
	case 1:
		return matches[0], nil
	}
	return model.Note{}, errs.New(errs.InvalidArgument,
		fmt.Sprintf("%q matches %d notes, use more of the id", ref, len(matches)))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
