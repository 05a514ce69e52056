// Package notepad owns the note collection, the current selection and the text-size
// preference, and mirrors them to a store.KV after every change.
//
// Operations that name a note by id treat an unknown id as a no-op: nothing changes
// and nothing is written. None of them return an error for it.
//
// A Notepad is meant to be driven from one goroutine, the way a UI event loop drives it.
package notepad

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/notepad/internal/model"
	"github.com/idilsaglam/notepad/internal/store"
)

type Notepad struct {
	kv    store.KV
	log   *zap.Logger
	newID func() string
	now   func() time.Time

	notes    []model.Note
	selected string // "" is no selection
	fontSize int

	saveErrs map[string]error
}

// Option configures a Notepad.
type Option func(*Notepad)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Notepad) {
		if l != nil {
			p.log = l
		}
	}
}

// WithIDGenerator replaces the uuid generator used for new notes.
func WithIDGenerator(gen func() string) Option {
	return func(p *Notepad) {
		if gen != nil {
			p.newID = gen
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Notepad) {
		if now != nil {
			p.now = now
		}
	}
}

// Open loads the notes and the text size from kv. Missing or unreadable slots leave
// the empty collection and the default size in place; Open never fails.
// The first loaded note, if any, becomes the selection.
func Open(ctx context.Context, kv store.KV, opts ...Option) *Notepad {
	p := &Notepad{
		kv:       kv,
		log:      zap.NewNop(),
		newID:    uuid.NewString,
		now:      time.Now,
		fontSize: model.DefaultFontSize,
		saveErrs: map[string]error{},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.load(ctx)
	return p
}

func (p *Notepad) load(ctx context.Context) {
	raw, ok, err := p.kv.Load(ctx, KeyNotes)
	switch {
	case err != nil:
		p.log.Warn("load notes failed, starting empty", zap.Error(err))
	case !ok:
		p.log.Debug("no saved notes")
	default:
		notes, dropped, err := decodeNotes(raw)
		if err != nil {
			p.log.Warn("saved notes are malformed, starting empty", zap.Error(err))
			break
		}
		if dropped > 0 {
			p.log.Warn("dropped notes with missing or duplicate ids", zap.Int("dropped", dropped))
		}
		p.notes = notes
		if len(notes) > 0 {
			p.selected = notes[0].ID
		}
		p.log.Debug("loaded notes", zap.Int("count", len(notes)))
	}

	raw, ok, err = p.kv.Load(ctx, KeyTextSize)
	switch {
	case err != nil:
		p.log.Warn("load text size failed, using default", zap.Error(err))
	case ok:
		n, err := decodeFontSize(raw)
		if err != nil {
			p.log.Warn("saved text size is malformed, using default", zap.String("value", raw), zap.Error(err))
			break
		}
		p.fontSize = n
	}
}

// Create appends a fresh empty note named "Untitled <len+1>", selects it and returns it.
func (p *Notepad) Create(ctx context.Context) model.Note {
	n := model.Note{
		ID:           p.uniqueID(),
		Name:         fmt.Sprintf("Untitled %d", len(p.notes)+1),
		LastModified: p.now(),
	}
	p.notes = append(p.notes, n)
	p.selected = n.ID
	p.log.Debug("note created", zap.String("id", n.ID))
	p.saveNotes(ctx)
	return n
}

// uniqueID draws from the generator and suffixes the draw if it is empty or taken.
func (p *Notepad) uniqueID() string {
	base := p.newID()
	id := base
	for i := 2; id == "" || p.index(id) >= 0; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	return id
}

// Rename sets the name of note id. Invalid UTF-8 is replaced with U+FFFD, as the
// stored JSON would do; bounding the name to model.MaxNameLen is the caller's job.
// LastModified is not touched.
func (p *Notepad) Rename(ctx context.Context, id, name string) {
	i := p.index(id)
	if i < 0 {
		p.log.Debug("rename ignored, unknown id", zap.String("id", id))
		return
	}
	p.notes[i].Name = strings.ToValidUTF8(name, "\uFFFD")
	p.saveNotes(ctx)
}

// SetContent replaces the content of note id and stamps LastModified.
// Invalid UTF-8 is replaced with U+FFFD so memory matches what a reload returns.
func (p *Notepad) SetContent(ctx context.Context, id, text string) {
	i := p.index(id)
	if i < 0 {
		p.log.Debug("edit ignored, unknown id", zap.String("id", id))
		return
	}
	p.notes[i].Content = strings.ToValidUTF8(text, "\uFFFD")
	p.notes[i].LastModified = p.now()
	p.saveNotes(ctx)
}

// Delete removes note id. Deleting the selected note moves the selection to the
// first remaining note, or clears it when none is left.
func (p *Notepad) Delete(ctx context.Context, id string) {
	i := p.index(id)
	if i < 0 {
		p.log.Debug("delete ignored, unknown id", zap.String("id", id))
		return
	}
	p.notes = append(p.notes[:i], p.notes[i+1:]...)
	if p.selected == id {
		p.selected = ""
		if len(p.notes) > 0 {
			p.selected = p.notes[0].ID
		}
	}
	p.log.Debug("note deleted", zap.String("id", id))
	p.saveNotes(ctx)
}

// Select makes id the selection without checking that it exists.
// An empty id clears the selection.
func (p *Notepad) Select(id string) {
	p.selected = id
}

// Selected returns the raw selection.
func (p *Notepad) Selected() (string, bool) {
	return p.selected, p.selected != ""
}

// Current returns the selected note. ok is false when nothing is selected or the
// selection no longer names a note.
func (p *Notepad) Current() (model.Note, bool) {
	if p.selected == "" {
		return model.Note{}, false
	}
	return p.Get(p.selected)
}

// Get looks a note up by id.
func (p *Notepad) Get(id string) (model.Note, bool) {
	i := p.index(id)
	if i < 0 {
		return model.Note{}, false
	}
	return p.notes[i], true
}

// Notes returns a copy of the collection in insertion order.
func (p *Notepad) Notes() []model.Note {
	out := make([]model.Note, len(p.notes))
	copy(out, p.notes)
	return out
}

func (p *Notepad) Len() int { return len(p.notes) }

// SetFontSize clamps n into [model.MinFontSize, model.MaxFontSize], stores it
// and returns the stored value.
func (p *Notepad) SetFontSize(ctx context.Context, n int) int {
	p.fontSize = model.ClampFontSize(n)
	p.save(ctx, KeyTextSize, encodeFontSize(p.fontSize))
	return p.fontSize
}

func (p *Notepad) FontSize() int { return p.fontSize }

// Err reports the failures of the most recent write of each slot, or nil when every
// slot's last write went through. In-memory state is kept even when a write fails.
func (p *Notepad) Err() error {
	var errList []error
	for _, key := range []string{KeyNotes, KeyTextSize} {
		if err := p.saveErrs[key]; err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

func (p *Notepad) index(id string) int {
	for i := range p.notes {
		if p.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (p *Notepad) saveNotes(ctx context.Context) {
	raw, err := encodeNotes(p.notes)
	if err != nil {
		p.saveErrs[KeyNotes] = fmt.Errorf("encode notes: %w", err)
		p.log.Warn("encode notes failed", zap.Error(err))
		return
	}
	p.save(ctx, KeyNotes, raw)
}

func (p *Notepad) save(ctx context.Context, key, value string) {
	if err := p.kv.Save(ctx, key, value); err != nil {
		p.saveErrs[key] = fmt.Errorf("save %s: %w", key, err)
		p.log.Warn("save failed", zap.String("key", key), zap.Error(err))
		return
	}
	delete(p.saveErrs, key)
}
