package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tiles2048/internal/assets"
	"tiles2048/internal/board"
	"tiles2048/internal/entity"
	"tiles2048/internal/gamemode"
)

// Board geometry in layout pixels.
const (
	cellSize = 72
	cellGap  = 8
	gridSize = board.Size*cellSize + (board.Size+1)*cellGap
	gridX    = (ScreenWidth - gridSize) / 2
	gridY    = 72
)

// Arrow keys in the order they are checked; the first one pressed wins the tick.
var keyDirections = []struct {
	key ebiten.Key
	dir board.Direction
}{
	{ebiten.KeyArrowUp, board.Up},
	{ebiten.KeyArrowDown, board.Down},
	{ebiten.KeyArrowLeft, board.Left},
	{ebiten.KeyArrowRight, board.Right},
}

// Game is the ebiten adapter around one Session. It holds no game rules.
type Game struct {
	log     *slog.Logger
	session *gamemode.Session
	palette *assets.Palette

	tiles    [board.Size][board.Size]*entity.Tile
	score    *entity.Label
	gameOver *entity.Label
	exit     *entity.Button
}

func NewGame(logger *slog.Logger, session *gamemode.Session, palette *assets.Palette) *Game {
	g := &Game{
		log:      logger.With("component", "ui"),
		session:  session,
		palette:  palette,
		score:    entity.NewLabel("", 2, palette.TextLight),
		gameOver: entity.NewLabel("Game Over!", 4, palette.Accent),
		exit: entity.NewButton("Exit", (ScreenWidth-96)/2, ScreenHeight-56, 96, 36,
			palette.Board, palette.TextLight),
	}

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			x := gridX + cellGap + c*(cellSize+cellGap)
			y := gridY + cellGap + r*(cellSize+cellGap)
			g.tiles[r][c] = entity.NewTile(float64(x), float64(y), cellSize)
		}
	}

	return g
}

// Update: input (60 TPS)
func (g *Game) Update() error {
	if g.exit.Clicked() {
		g.log.Info("exit requested", "score", g.session.Board().Score(), "moves", g.session.Moves())
		return ebiten.Termination
	}

	for _, kd := range keyDirections {
		if inpututil.IsKeyJustPressed(kd.key) {
			g.session.Apply(kd.dir)
			break
		}
	}

	return nil
}

// Draw: rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	g.score.SetText(fmt.Sprintf("Score: %d", g.session.Board().Score()))
	g.score.DrawCentered(screen, ScreenWidth/2, 36)

	g.drawBoard(screen, g.session.Board())

	if g.session.State() == gamemode.GameOver {
		shade := color.RGBA{0x00, 0x00, 0x00, 0x80}
		vector.DrawFilledRect(screen, gridX, gridY, gridSize, gridSize, shade, false)
		g.gameOver.DrawCentered(screen, ScreenWidth/2, gridY+gridSize/2)
	}

	g.exit.Draw(screen)
}

// drawBoard renders every cell of b.
func (g *Game) drawBoard(screen *ebiten.Image, b *board.Board) {
	vector.DrawFilledRect(screen, gridX, gridY, gridSize, gridSize, g.palette.Board, false)

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			tile := g.tiles[r][c]
			tile.SetValue(b.Get(r, c))
			tile.Draw(screen, g.palette)
		}
	}
}

// Layout: fixed logical size, ebiten scales it to the window or screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
