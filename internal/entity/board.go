package entity

// Cell is the value of one board square. X and O double as the model's
// feature encoding (+1 / -1), so a board can be fed to inference as-is.
type Cell int8

const (
	Empty Cell = 0
	X     Cell = 1
	O     Cell = -1
	Tie   Cell = 2
)

const CellCount = 9

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	case Tie:
		return "-"
	default:
		return " "
	}
}

// Opponent returns the other mark. Anything that is not a player mark maps to X.
func Opponent(player Cell) Cell {
	if player == X {
		return O
	}
	return X
}

// Board is a value type: assigning or passing it copies every cell.
type Board [CellCount]Cell

// ApplyMove places player on cell. Out-of-range or occupied cells are ignored;
// the result only reports whether the mark landed.
func (that *Board) ApplyMove(cell int, player Cell) bool {
	if cell < 0 || cell >= CellCount {
		return false
	}

	if that[cell] != Empty {
		return false
	}

	that[cell] = player

	return true
}

// CheckWinner returns the mark of the first complete line (rows, then columns,
// then diagonals), Tie for a full board without a line, or Empty while the game goes on.
func (that *Board) CheckWinner() Cell {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			return a
		}
	}

	// the game will continue until all the squares are full
	if that.HasEmptyCell() {
		return Empty
	}

	return Tie
}

func (that *Board) HasEmptyCell() bool {
	for _, cell := range that {
		if cell == Empty {
			return true
		}
	}

	return false
}

func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, CellCount)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Features encodes the board for the linear model: X=+1, O=-1, empty=0.
func (that *Board) Features() []float64 {
	features := make([]float64, CellCount)
	for i, cell := range that {
		features[i] = float64(cell)
	}

	return features
}
