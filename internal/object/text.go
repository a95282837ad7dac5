package object

import (
	"unicode/utf8"

	"github.com/tomz197/asteroids-ufo/internal/draw"
)

// Text is a line of UI text at a 1-based terminal position.
type Text struct {
	Col   int
	Row   int
	Value string
}

// Centered returns a Text whose middle sits at column centerCol.
func Centered(centerCol, row int, value string) Text {
	return Text{Col: centerCol - utf8.RuneCountInString(value)/2, Row: row, Value: value}
}

// Draw writes the text. Positions left of or above the screen are clamped.
func (t Text) Draw(w *draw.ChunkWriter) {
	if t.Value == "" {
		return
	}
	w.WriteAt(max(t.Col, 1), max(t.Row, 1), t.Value)
}
