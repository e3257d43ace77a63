package game

// Color identifies who owns a cell or who is to move.
type Color int

const (
	None Color = iota
	Red
	Blue
	BlockedOwner
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case BlockedOwner:
		return "blocked"
	default:
		return "none"
	}
}

// Opponent returns the other playing color. None and BlockedOwner map to None.
func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return None
	}
}

// Cell holds the state of one board square. Dots may transiently exceed
// Capacity between a placement and the next settle pass.
type Cell struct {
	Owner    Color `json:"owner"`
	Dots     int   `json:"dots"`
	Capacity int   `json:"capacity"`
	Blocked  bool  `json:"blocked"`
}

// Move is a board coordinate, row-major, zero-based.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Board struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"`
}

// NewBoard builds a size x size board with the given cells blocked.
// Capacities are zero until ApplyCapacities runs. Size 0 is a valid empty
// board. Blocked coordinates outside the board are ignored.
func NewBoard(size int, blocked []Move) Board {
	if size < 0 {
		size = 0
	}
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}
	b := Board{Size: size, Cells: cells}
	for _, m := range blocked {
		if !b.InBounds(m.Row, m.Col) {
			continue
		}
		b.Cells[m.Row][m.Col] = Cell{Owner: BlockedOwner, Blocked: true}
	}
	return b
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Size && col >= 0 && col < b.Size
}

// Cell returns a copy of the cell at (row, col).
func (b Board) Cell(row, col int) Cell {
	return b.Cells[row][col]
}

// Clone returns a fully independent copy of the board.
func (b Board) Clone() Board {
	cells := make([][]Cell, b.Size)
	for r := range cells {
		cells[r] = make([]Cell, b.Size)
		copy(cells[r], b.Cells[r])
	}
	return Board{Size: b.Size, Cells: cells}
}

// PlaceDot adds one dot at (row, col) and hands the cell to owner. It is a
// trusted primitive: legality is the caller's concern (see IsValidMove).
func (b *Board) PlaceDot(row, col int, owner Color) {
	cell := &b.Cells[row][col]
	cell.Dots++
	cell.Owner = owner
}

// SetCapacity assigns a cell's explosion threshold. Called once per cell by
// ApplyCapacities after construction; capacity is immutable afterwards.
func (b *Board) SetCapacity(row, col, capacity int) {
	b.Cells[row][col].Capacity = capacity
}
