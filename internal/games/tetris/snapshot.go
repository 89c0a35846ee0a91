package tetris

// Snapshot captures the engine state for tests and session records.
type Snapshot struct {
	Tick      uint64
	State     State
	Outcome   Outcome
	HasPiece  bool
	PieceX    int
	PieceY    int
	PieceSize int
	Pieces    int // Pieces locked
	Spawned   int
	Occupied  int // Occupied grid cells
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		State:    g.state,
		Outcome:  g.outcome,
		Pieces:   g.pieces,
		Spawned:  g.spawned,
		Occupied: g.grid.Occupied(),
	}
	if g.piece != nil {
		snap.HasPiece = true
		snap.PieceX = g.piece.X
		snap.PieceY = g.piece.Y
		snap.PieceSize = g.piece.Shape.Size()
	}
	return snap
}
