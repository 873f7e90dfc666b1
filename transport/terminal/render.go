package terminal

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

const (
	originX = 2
	titleY  = 0
	gridY   = 2
	statusY = gridY + 2*entity.RowSize
	bannerY = statusY + 1
	helpY   = bannerY + 2

	// a cell is three columns wide plus the separator
	cellWidth = 4

	title = "Tic-tac-toe"
)

var (
	styleDefault = tcell.StyleDefault
	styleHint    = tcell.StyleDefault.Dim(true)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleAgent   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBanner  = tcell.StyleDefault.Bold(true)
	styleFailure = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

func (that *UI) draw() {
	that.screen.Clear()

	drawText(that.screen, originX, titleY, styleBanner, title)
	that.drawGrid()

	if that.view.Failure != "" {
		drawText(that.screen, originX, statusY, styleFailure, that.view.Failure)
	} else {
		drawText(that.screen, originX, statusY, styleDefault, that.view.Status)
	}

	if that.view.Banner != "" {
		drawText(that.screen, originX, bannerY, styleBanner, that.view.Banner)
	}

	help := "1-9/arrows+enter: move  r: " + that.view.ResetLabel + "  q: quit"
	drawText(that.screen, originX, helpY, styleHint, help)

	that.screen.Show()
}

func (that *UI) drawGrid() {
	for row := range entity.RowSize {
		y := gridY + row*2

		for col := range entity.RowSize {
			cell := row*entity.RowSize + col
			x := originX + col*cellWidth

			text, style := that.cellText(cell)
			if cell == that.cursor && that.view.Playable[cell] {
				style = style.Reverse(true)
			}

			drawText(that.screen, x, y, style, " "+text+" ")

			if col < entity.RowSize-1 {
				that.screen.SetContent(x+cellWidth-1, y, tcell.RuneVLine, nil, styleDefault)
			}
		}

		if row < entity.RowSize-1 {
			that.drawSeparator(y + 1)
		}
	}
}

func (that *UI) drawSeparator(y int) {
	width := entity.RowSize*cellWidth - 1

	for i := range width {
		r := tcell.RuneHLine
		if i%cellWidth == cellWidth-1 {
			r = tcell.RunePlus
		}
		that.screen.SetContent(originX+i, y, r, nil, styleDefault)
	}
}

// cellText shows the mark, or the key that plays an empty cell.
func (that *UI) cellText(cell int) (string, tcell.Style) {
	switch mark := that.view.Cells[cell]; mark {
	case string(entity.PlayerMark):
		return mark, stylePlayer
	case string(entity.AgentMark):
		return mark, styleAgent
	default:
		return strconv.Itoa(cell + 1), styleHint
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
