package list

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

type Item struct {
	ID        string
	Text      string
	Completed bool
}

// IDFunc supplies a fresh, globally unique identifier on every call.
type IDFunc func() string

// Location is a zero-based position in the list as reported by a drag gesture.
type Location struct {
	Index int
}

// DragResult is what a drag controller reports when a drag ends.
// A nil Destination means the gesture was cancelled.
type DragResult struct {
	Source      Location
	Destination *Location
}

// Editor owns the ordered items and the pending draft text.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Editor struct {
	items []Item
	draft string
	newID IDFunc
}

type Option func(*Editor)

func WithIDFunc(fn IDFunc) Option {
	return func(e *Editor) {
		if fn != nil {
			e.newID = fn
		}
	}
}

func New(opts ...Option) *Editor {
	e := &Editor{newID: uuid.NewString}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Items() []Item {
	return slices.Clone(e.items)
}

func (e *Editor) Len() int {
	return len(e.items)
}

func (e *Editor) At(i int) Item {
	return e.items[i]
}

// Index returns the position of the item with the given id, or -1.
func (e *Editor) Index(id string) int {
	return slices.IndexFunc(e.items, func(it Item) bool { return it.ID == id })
}

func (e *Editor) Draft() string {
	return e.draft
}

// SetDraft stores text verbatim; trimming happens only on Add.
func (e *Editor) SetDraft(text string) {
	e.draft = text
}

// Add commits the draft as a new item at the end of the list and clears the
// draft. A blank draft is ignored and left as is.
func (e *Editor) Add() (Item, bool) {
	text := strings.TrimSpace(e.draft)
	if text == "" {
		return Item{}, false
	}
	it := Item{ID: e.newID(), Text: text}
	e.items = append(e.items, it)
	e.draft = ""
	return it, true
}

// Delete removes the item with the given id. Unknown ids are ignored.
func (e *Editor) Delete(id string) bool {
	i := e.Index(id)
	if i < 0 {
		return false
	}
	e.items = slices.Delete(e.items, i, i+1)
	return true
}

// Reorder applies a finished drag. Cancelled drags change nothing.
func (e *Editor) Reorder(r DragResult) {
	if r.Destination == nil {
		return
	}
	e.Move(r.Source.Index, r.Destination.Index)
}

// Move takes the item at src out of the list and inserts it at dst, where dst
// indexes the list with the item already removed. Both indices must be in
// [0, Len()).
func (e *Editor) Move(src, dst int) {
	it := e.items[src]
	e.items = slices.Delete(e.items, src, src+1)
	e.items = slices.Insert(e.items, dst, it)
}
