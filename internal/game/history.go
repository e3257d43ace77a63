package game

// DefaultHistoryLimit bounds how many undo snapshots a game keeps.
const DefaultHistoryLimit = 50

// HistoryEntry is one pre-move snapshot: the full board and the player who
// was to move at that point.
type HistoryEntry struct {
	Board  Board `json:"board"`
	Player Color `json:"player"`
}

// History is a bounded stack of board snapshots. Saving past the limit
// evicts the oldest entry; undo pops the newest. Entries are deep copies on
// the way in and on the way out, so neither the live board nor a returned
// snapshot can reach stored state through aliasing.
type History struct {
	limit   int
	entries []HistoryEntry
}

// NewHistory returns a history bounded to limit entries. A limit below 1
// falls back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Save records a snapshot of board and the player about to move. The board
// is copied cell by cell; the caller may keep mutating it.
func (h *History) Save(board Board, player Color) {
	h.entries = append(h.entries, HistoryEntry{Board: board.Clone(), Player: player})
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
}

// Undo pops and returns the most recent snapshot. The second return is false
// when there is nothing to undo; that is a normal condition, not an error.
func (h *History) Undo() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return HistoryEntry{Board: last.Board.Clone(), Player: last.Player}, true
}

func (h *History) CanUndo() bool {
	return len(h.entries) > 0
}

func (h *History) Len() int {
	return len(h.entries)
}

// Clear drops every snapshot, e.g. on level start.
func (h *History) Clear() {
	h.entries = nil
}
