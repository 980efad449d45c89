package game

import "strings"

// Board owns the expanded cell grid for one match. It is mutated only
// through PlaceLine and ApplyCaptures, and only ever by a single writer;
// the claimed counters are caches that must always equal a live recount.
type Board struct {
	cfg   Config
	slots []Slot

	spacersClaimed int
	boxesClaimed   int

	bus *EventBus
}

// NewBoard creates a board from logical dot dimensions. Every cell starts
// in its unoccupied parity kind; the outer rows and columns begin and end
// on dots, so the grid never terminates on a half-drawn box.
func NewBoard(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := cfg.GridWidth(), cfg.GridHeight()
	slots := make([]Slot, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			slots[y*w+x] = Slot{Coord: Coord{X: x, Y: y}, Kind: Classify(x, y)}
		}
	}

	return &Board{cfg: cfg, slots: slots}, nil
}

// SetEventBus attaches the bus that placement and capture notifications are
// published to. A nil bus disables notifications.
func (b *Board) SetEventBus(bus *EventBus) {
	b.bus = bus
}

// Config returns the board's logical dot dimensions.
func (b *Board) Config() Config { return b.cfg }

func (b *Board) index(x, y int) int {
	return y*b.cfg.GridWidth() + x
}

// SlotAt returns the slot at (x, y), or a CoordError if the coordinate is
// outside the grid.
func (b *Board) SlotAt(x, y int) (Slot, error) {
	if !b.cfg.Contains(x, y) {
		return Slot{}, &CoordError{X: x, Y: y}
	}
	return b.slots[b.index(x, y)], nil
}

// PlaceLine converts the spacer at the turn's coordinate into a line bound
// to that turn. If the target is out of bounds or not an open spacer it
// fails with PlacementError and the grid is untouched; a cell can be placed
// exactly once. Subscribers are notified synchronously with before/after
// slot snapshots.
func (b *Board) PlaceLine(turn Turn) error {
	before, err := b.SlotAt(turn.Move.X, turn.Move.Y)
	if err != nil {
		return &PlacementError{Turn: turn}
	}
	if before.Kind != Spacer {
		return &PlacementError{Turn: turn}
	}

	bound := turn
	after := Slot{Coord: before.Coord, Kind: Line, Turn: &bound}
	b.slots[b.index(turn.Move.X, turn.Move.Y)] = after
	b.spacersClaimed++

	b.publish(NewPlacementEvent(before, after))
	return nil
}

// CountSurroundingLines returns how many of the four spacers around the box
// at (x, y) have been drawn. Querying a non-box coordinate fails with
// QueryError.
func (b *Board) CountSurroundingLines(x, y int) (int, error) {
	if !b.cfg.Contains(x, y) {
		return 0, &CoordError{X: x, Y: y}
	}
	if Classify(x, y) != Box {
		return 0, &QueryError{X: x, Y: y}
	}

	count := 0
	for _, side := range b.surroundingSides(x, y) {
		if side.Kind == Line {
			count++
		}
	}
	return count, nil
}

// PriorityTurn returns the turn credited with capturing the box at (x, y):
// the bound turn of whichever enclosing line has the greatest index. It
// returns nil when fewer than four sides are drawn.
func (b *Board) PriorityTurn(x, y int) (*Turn, error) {
	if !b.cfg.Contains(x, y) {
		return nil, &CoordError{X: x, Y: y}
	}
	if Classify(x, y) != Box {
		return nil, &QueryError{X: x, Y: y}
	}

	var latest *Turn
	lines := 0
	for _, side := range b.surroundingSides(x, y) {
		if side.Kind != Line {
			continue
		}
		lines++
		if latest == nil || side.Turn.Index > latest.Index {
			latest = side.Turn
		}
	}
	if lines < 4 {
		return nil, nil
	}
	return latest, nil
}

// surroundingSides returns the four spacer-axis slots around a box. Box
// coordinates are odd on both axes, so all four neighbours are in bounds.
func (b *Board) surroundingSides(x, y int) [4]Slot {
	return [4]Slot{
		b.slots[b.index(x, y-1)],
		b.slots[b.index(x-1, y)],
		b.slots[b.index(x+1, y)],
		b.slots[b.index(x, y+1)],
	}
}

// ApplyCaptures scans all uncaptured boxes and converts any that are fully
// enclosed, crediting each to its own priority turn. The whole scan is one
// sweep, so a single line that completes two adjacent boxes captures both
// in the same call. Returns the number of boxes captured; with no
// intervening placement a second call returns 0.
func (b *Board) ApplyCaptures() int {
	captured := 0
	b.WalkBoxes(func(before Slot) bool {
		if before.Kind != Box {
			return true
		}
		turn, err := b.PriorityTurn(before.Coord.X, before.Coord.Y)
		if err != nil || turn == nil {
			return true
		}

		after := Slot{Coord: before.Coord, Kind: Captured, Turn: turn}
		b.slots[b.index(before.Coord.X, before.Coord.Y)] = after
		b.boxesClaimed++
		captured++

		b.publish(NewCaptureEvent(before, after))
		return true
	})
	return captured
}

// WalkBoxes visits every box cell in row-major order, striding directly to
// odd coordinates so the cost is proportional to the number of boxes, not
// the grid size. The walk stops early if fn returns false.
func (b *Board) WalkBoxes(fn func(Slot) bool) {
	for y := 1; y < b.cfg.GridHeight(); y += 2 {
		for x := 1; x < b.cfg.GridWidth(); x += 2 {
			if !fn(b.slots[b.index(x, y)]) {
				return
			}
		}
	}
}

// WalkDots visits every dot cell in row-major order.
func (b *Board) WalkDots(fn func(Slot) bool) {
	for y := 0; y < b.cfg.GridHeight(); y += 2 {
		for x := 0; x < b.cfg.GridWidth(); x += 2 {
			if !fn(b.slots[b.index(x, y)]) {
				return
			}
		}
	}
}

// WalkSpacers visits every spacer cell in row-major order. Even rows hold
// horizontal spacers at odd columns, odd rows hold vertical spacers at even
// columns.
func (b *Board) WalkSpacers(fn func(Slot) bool) {
	for y := 0; y < b.cfg.GridHeight(); y++ {
		start := 1 - y%2
		for x := start; x < b.cfg.GridWidth(); x += 2 {
			if !fn(b.slots[b.index(x, y)]) {
				return
			}
		}
	}
}

// SpacersClaimed returns the number of drawn lines.
func (b *Board) SpacersClaimed() int { return b.spacersClaimed }

// SpacersRemaining returns the number of undrawn spacers.
func (b *Board) SpacersRemaining() int { return b.cfg.Spacers() - b.spacersClaimed }

// BoxesClaimed returns the number of captured boxes.
func (b *Board) BoxesClaimed() int { return b.boxesClaimed }

// BoxesRemaining returns the number of uncaptured boxes.
func (b *Board) BoxesRemaining() int { return b.cfg.Boxes() - b.boxesClaimed }

// Recount walks the grid and tallies claimed spacers and boxes from
// scratch. The running counters must always equal this; tests use it to
// prove they are caches, not independent state.
func (b *Board) Recount() (spacersClaimed, boxesClaimed int) {
	b.WalkSpacers(func(s Slot) bool {
		if s.Kind == Line {
			spacersClaimed++
		}
		return true
	})
	b.WalkBoxes(func(s Slot) bool {
		if s.Kind == Captured {
			boxesClaimed++
		}
		return true
	})
	return spacersClaimed, boxesClaimed
}

// State returns an immutable snapshot of the board for handing to player
// capabilities.
func (b *Board) State() BoardState {
	slots := make([]Slot, len(b.slots))
	copy(slots, b.slots)
	// Rebind the turn pointers so writes through a snapshot can never
	// reach the live grid.
	for i := range slots {
		if slots[i].Turn != nil {
			turn := *slots[i].Turn
			slots[i].Turn = &turn
		}
	}
	return BoardState{
		Config:           b.cfg,
		Slots:            slots,
		SpacersClaimed:   b.spacersClaimed,
		SpacersRemaining: b.SpacersRemaining(),
		BoxesClaimed:     b.boxesClaimed,
		BoxesRemaining:   b.BoxesRemaining(),
	}
}

// String renders the grid for debugging: '.' for dots, '-' and '|' for
// lines by orientation, the capturing player's initial for captured boxes
// and spaces for everything still open. Not a parseable protocol.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.cfg.GridHeight(); y++ {
		for x := 0; x < b.cfg.GridWidth(); x++ {
			slot := b.slots[b.index(x, y)]
			switch slot.Kind {
			case Dot:
				sb.WriteByte('.')
			case Line:
				if IsHorizontalSpacer(x, y) {
					sb.WriteByte('-')
				} else {
					sb.WriteByte('|')
				}
			case Captured:
				sb.WriteRune(slot.Turn.Player.Initial())
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) publish(event Event) {
	if b.bus != nil {
		b.bus.Publish(event)
	}
}
