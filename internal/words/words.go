package words

import (
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
)

// Item is a single word tile. The ID is stable for the lifetime of the
// collection and is independent of the title, so repeated words stay distinct.
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Partition names the area an item currently belongs to.
type Partition int

const (
	PartitionNone Partition = iota
	PartitionAvailable
	PartitionSelected
)

func (p Partition) String() string {
	switch p {
	case PartitionAvailable:
		return "available"
	case PartitionSelected:
		return "selected"
	default:
		return "none"
	}
}

// Collection holds the fixed reference list and its two partitions. An item
// ID is in at most one partition at a time.
type Collection struct {
	reference []Item
	order     map[string]int
	available []Item
	selected  []Item
	logger    *log.Logger
}

// New builds a collection whose available pool holds one item per title.
func New(titles []string) *Collection {
	items := make([]Item, 0, len(titles))
	for _, title := range titles {
		items = append(items, Item{ID: uuid.NewString(), Title: title})
	}
	return FromItems(items)
}

// Parse splits a sentence on whitespace and builds a collection from the pieces.
func Parse(sentence string) *Collection {
	return New(strings.Fields(sentence))
}

// FromItems builds a collection from pre-identified items. Items with an empty
// or repeated ID are assigned a fresh one.
func FromItems(items []Item) *Collection {
	c := &Collection{
		order:  make(map[string]int, len(items)),
		logger: log.New(io.Discard, "", 0),
	}
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if _, dup := c.order[item.ID]; dup {
			item.ID = uuid.NewString()
		}
		c.order[item.ID] = len(c.reference)
		c.reference = append(c.reference, item)
	}
	c.Reset()
	return c
}

// SetLogger routes stale-reference diagnostics to l. A nil logger silences them.
func (c *Collection) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	c.logger = l
}

// Available returns a copy of the available pool in display order.
func (c *Collection) Available() []Item {
	return append([]Item(nil), c.available...)
}

// Selected returns a copy of the selected sequence in display order.
func (c *Collection) Selected() []Item {
	return append([]Item(nil), c.selected...)
}

// Reference returns a copy of the original list.
func (c *Collection) Reference() []Item {
	return append([]Item(nil), c.reference...)
}

// Len reports the number of items in the reference list.
func (c *Collection) Len() int {
	return len(c.reference)
}

// Item looks up an item by ID regardless of its partition.
func (c *Collection) Item(id string) (Item, bool) {
	idx, ok := c.order[id]
	if !ok {
		return Item{}, false
	}
	return c.reference[idx], true
}

// Locate reports which partition holds id and its index there.
func (c *Collection) Locate(id string) (Partition, int, bool) {
	if idx := indexOf(c.selected, id); idx >= 0 {
		return PartitionSelected, idx, true
	}
	if idx := indexOf(c.available, id); idx >= 0 {
		return PartitionAvailable, idx, true
	}
	return PartitionNone, -1, false
}

// MoveWithinSelected repositions itemID next to beforeID in the selected
// sequence. Moving forward lands after the target, moving backward lands
// before it.
func (c *Collection) MoveWithinSelected(itemID, beforeID string) {
	if itemID == beforeID {
		return
	}
	moved, ok := reorder(c.selected, itemID, beforeID)
	if !ok {
		c.logger.Printf("[words] move within selected ignored: %s -> %s", itemID, beforeID)
		return
	}
	c.selected = moved
}

// MoveWithinAvailable reorders the available pool with the same rule as
// MoveWithinSelected.
func (c *Collection) MoveWithinAvailable(itemID, beforeID string) {
	if itemID == beforeID {
		return
	}
	moved, ok := reorder(c.available, itemID, beforeID)
	if !ok {
		c.logger.Printf("[words] move within available ignored: %s -> %s", itemID, beforeID)
		return
	}
	c.available = moved
}

// Promote moves itemID from the available pool to the end of the selected
// sequence, then next to nearID when that is given and selected.
func (c *Collection) Promote(itemID, nearID string) {
	if indexOf(c.selected, itemID) >= 0 {
		return
	}
	idx := indexOf(c.available, itemID)
	if idx < 0 {
		c.logger.Printf("[words] promote ignored: %s not available", itemID)
		return
	}
	item := c.available[idx]
	c.available = removeAt(c.available, idx)
	c.selected = append(c.selected, item)
	if nearID != "" && indexOf(c.selected, nearID) >= 0 {
		c.MoveWithinSelected(itemID, nearID)
	}
}

// Demote removes itemID from the selected sequence and returns it to the
// available pool at its reference position.
func (c *Collection) Demote(itemID string) {
	idx := indexOf(c.selected, itemID)
	if idx < 0 {
		c.logger.Printf("[words] demote ignored: %s not selected", itemID)
		return
	}
	item := c.selected[idx]
	c.selected = removeAt(c.selected, idx)

	rank := c.order[itemID]
	at := len(c.available)
	for i, other := range c.available {
		if c.order[other.ID] > rank {
			at = i
			break
		}
	}
	c.available = insertAt(c.available, at, item)
}

// Reset empties the selected sequence and restores the original pool order.
func (c *Collection) Reset() {
	c.available = append([]Item(nil), c.reference...)
	c.selected = nil
}

func reorder(items []Item, itemID, beforeID string) ([]Item, bool) {
	from := indexOf(items, itemID)
	to := indexOf(items, beforeID)
	if from < 0 || to < 0 {
		return items, false
	}
	item := items[from]
	out := removeAt(items, from)
	// After removal the target has shifted left by one when it sat past the
	// source, so inserting at `to` lands right after it.
	return insertAt(out, to, item), true
}

func indexOf(items []Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func removeAt(items []Item, idx int) []Item {
	out := make([]Item, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}

func insertAt(items []Item, idx int, item Item) []Item {
	if idx > len(items) {
		idx = len(items)
	}
	out := make([]Item, 0, len(items)+1)
	out = append(out, items[:idx]...)
	out = append(out, item)
	return append(out, items[idx:]...)
}
