package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/liarsdice/internal/services/observer"
	"github.com/fatih/color"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	diceColor    = color.New(color.FgYellow, color.Bold)
	bidColor     = color.New(color.FgWhite, color.Bold)
	validColor   = color.New(color.FgGreen, color.Bold)
	invalidColor = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgMagenta)
)

// renderDice formats face values like [2 3 3 5 6]
func renderDice(values []int) string {
	faces := make([]string, 0, len(values))
	for _, v := range values {
		faces = append(faces, strconv.Itoa(v))
	}
	return diceColor.Sprintf("[%s]", strings.Join(faces, " "))
}

// renderChallengeTitle colors the outcome line by whether the bid held
func renderChallengeTitle(title string, bidValid bool) string {
	if bidValid {
		return validColor.Sprint(title)
	}
	return invalidColor.Sprint(title)
}

// renderHands lists every player's dice as revealed at a challenge
func renderHands(hands []*observer.Hand) string {
	var b strings.Builder
	for _, h := range hands {
		fmt.Fprintf(&b, "  %s: %s\n", h.PlayerName, renderDice(h.Values))
	}
	return b.String()
}
