package domain

// Side is one of the two players. Sente sits at the bottom of the diagram
// (ranks 6..8 at setup) and moves toward rank 0; Gote sits at the top.
type Side byte // 'S' or 'G'

const (
	Sente Side = 'S'
	Gote  Side = 'G'
)

// Forward is the rank delta of one step "forward" for s.
func (s Side) Forward() int {
	if s == Sente {
		return -1
	}
	return 1
}

func (s Side) Opponent() Side {
	if s == Sente {
		return Gote
	}
	return Sente
}

func (s Side) String() string {
	if s == Sente {
		return "先手"
	}
	return "後手"
}

type PieceKind byte // 'L','N','S','G','K','R','B','P'

const (
	Lance  PieceKind = 'L'
	Knight PieceKind = 'N'
	Silver PieceKind = 'S'
	Gold   PieceKind = 'G'
	King   PieceKind = 'K'
	Rook   PieceKind = 'R'
	Bishop PieceKind = 'B'
	Pawn   PieceKind = 'P'
)

// Kinds lists every piece kind in back-rank order followed by the majors and the pawn.
func Kinds() []PieceKind {
	return []PieceKind{Lance, Knight, Silver, Gold, King, Rook, Bishop, Pawn}
}

var kindNames = map[PieceKind]string{
	Lance: "香", Knight: "桂", Silver: "銀", Gold: "金", King: "玉", Rook: "飛", Bishop: "角", Pawn: "歩",
}

func (k PieceKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Name returns the single-kanji name used in KIF diagrams.
func (k PieceKind) Name() string {
	return kindNames[k]
}

func (k PieceKind) Letter() string {
	return string(k)
}

// Piece is a value copied in and out of the board.
type Piece struct {
	Side Side
	Kind PieceKind
}

// Dir is a single step (or the knight's fixed jump) in board coordinates.
type Dir struct {
	DF int // file delta
	DR int // rank delta
}

// Pattern describes how a piece moves: the directions it may use and whether
// it keeps going along each one until blocked.
type Pattern struct {
	Dirs  []Dir
	Slide bool
}

var (
	rookDirs   = []Dir{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	bishopDirs = []Dir{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	kingDirs   = []Dir{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// MovePattern returns the movement pattern of kind for side. Directional
// pieces are mirrored across ranks by the side's forward direction.
func MovePattern(kind PieceKind, side Side) Pattern {
	f := side.Forward()
	switch kind {
	case Pawn:
		return Pattern{Dirs: []Dir{{0, f}}}
	case Lance:
		return Pattern{Dirs: []Dir{{0, f}}, Slide: true}
	case Knight:
		return Pattern{Dirs: []Dir{{-1, 2 * f}, {1, 2 * f}}}
	case Silver:
		return Pattern{Dirs: []Dir{{-1, f}, {0, f}, {1, f}, {-1, -f}, {1, -f}}}
	case Gold:
		return Pattern{Dirs: []Dir{{-1, f}, {0, f}, {1, f}, {-1, 0}, {1, 0}, {0, -f}}}
	case King:
		return Pattern{Dirs: kingDirs}
	case Rook:
		return Pattern{Dirs: rookDirs, Slide: true}
	case Bishop:
		return Pattern{Dirs: bishopDirs, Slide: true}
	default:
		return Pattern{}
	}
}
