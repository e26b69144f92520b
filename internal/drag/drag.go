// Package drag turns pointer gestures into word collection mutations.
package drag

import (
	"io"
	"log"

	"github.com/csheth/wordtiles/internal/words"
)

// Session is the transient state of one drag interaction. The zero value is
// an idle session.
type Session struct {
	ItemID string
	Source words.Partition
}

// Active reports whether a drag is in progress.
func (s Session) Active() bool {
	return s.ItemID != ""
}

type TargetKind int

const (
	TargetOutside TargetKind = iota
	TargetTopList
	TargetBackground
)

func (k TargetKind) String() string {
	switch k {
	case TargetTopList:
		return "top-list"
	case TargetBackground:
		return "background"
	default:
		return "outside"
	}
}

// Target is the hit-tested drop location. ItemID names the tile under the
// pointer and may be empty when the pointer is over an area's empty space.
type Target struct {
	Kind   TargetKind
	ItemID string
}

func TopList(itemID string) Target    { return Target{Kind: TargetTopList, ItemID: itemID} }
func Background(itemID string) Target { return Target{Kind: TargetBackground, ItemID: itemID} }
func Outside() Target                 { return Target{Kind: TargetOutside} }

// Outcome summarizes what a gesture handler did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeReordered
	OutcomePromoted
	OutcomeDemoted
	OutcomeCleared
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReordered:
		return "reordered"
	case OutcomePromoted:
		return "promoted"
	case OutcomeDemoted:
		return "demoted"
	case OutcomeCleared:
		return "cleared"
	default:
		return "none"
	}
}

// Controller owns one session over a collection. It must be driven from a
// single goroutine.
type Controller struct {
	words   *words.Collection
	session Session
	logger  *log.Logger
}

func NewController(c *words.Collection) *Controller {
	return &Controller{words: c, logger: log.New(io.Discard, "", 0)}
}

// SetLogger routes gesture diagnostics to l. A nil logger silences them.
func (c *Controller) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	c.logger = l
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	return c.session
}

// Begin starts dragging itemID. Unknown IDs leave the controller idle.
func (c *Controller) Begin(itemID string) bool {
	part, _, ok := c.words.Locate(itemID)
	if !ok {
		c.logger.Printf("[drag] begin ignored: %s not found", itemID)
		c.session = Session{}
		return false
	}
	c.session = Session{ItemID: itemID, Source: part}
	return true
}

// Enter handles the pointer moving over target during a drag.
func (c *Controller) Enter(target Target) Outcome {
	if !c.live() {
		return OutcomeNone
	}
	id := c.session.ItemID
	switch target.Kind {
	case TargetTopList:
		if target.ItemID == "" {
			// Empty space in the sentence area appends the item and the rest
			// of the gesture reorders it there.
			if c.session.Source != words.PartitionAvailable {
				return OutcomeNone
			}
			c.words.Promote(id, "")
			c.session.Source = words.PartitionSelected
			return OutcomePromoted
		}
		if target.ItemID == id {
			return OutcomeNone
		}
		if part, _, _ := c.words.Locate(target.ItemID); part != words.PartitionSelected {
			return OutcomeNone
		}
		switch c.session.Source {
		case words.PartitionSelected:
			c.words.MoveWithinSelected(id, target.ItemID)
			return OutcomeReordered
		case words.PartitionAvailable:
			c.words.Promote(id, target.ItemID)
			c.session.Source = words.PartitionSelected
			return OutcomePromoted
		}
	case TargetBackground:
		if c.session.Source != words.PartitionAvailable || target.ItemID == "" || target.ItemID == id {
			return OutcomeNone
		}
		if part, _, _ := c.words.Locate(target.ItemID); part != words.PartitionAvailable {
			return OutcomeNone
		}
		c.words.MoveWithinAvailable(id, target.ItemID)
		return OutcomeReordered
	}
	return OutcomeNone
}

// Drop finalizes the drag over target and always ends the session. Only a
// change of partition happens here; reordering was already applied by Enter.
func (c *Controller) Drop(target Target) Outcome {
	defer c.End()
	if !c.live() {
		return OutcomeCleared
	}
	id := c.session.ItemID
	switch {
	case target.Kind == TargetTopList && c.session.Source == words.PartitionAvailable:
		c.words.Promote(id, target.ItemID)
		return OutcomePromoted
	case target.Kind == TargetBackground && c.session.Source == words.PartitionSelected:
		c.words.Demote(id)
		return OutcomeDemoted
	case target.Kind == TargetOutside:
		return OutcomeCleared
	}
	return OutcomeNone
}

// End clears the session. Every exit path of a gesture reaches it.
func (c *Controller) End() {
	c.session = Session{}
}

// live re-checks that the dragged item still sits where the session thinks
// it does, since a reset can race the gesture.
func (c *Controller) live() bool {
	if !c.session.Active() {
		return false
	}
	part, _, ok := c.words.Locate(c.session.ItemID)
	if !ok || part != c.session.Source {
		c.logger.Printf("[drag] stale session for %s (source=%s, now=%s)", c.session.ItemID, c.session.Source, part)
		c.session = Session{}
		return false
	}
	return true
}
