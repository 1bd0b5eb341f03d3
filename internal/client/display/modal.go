package display

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	defaultFrameWidth = 48
	maxFrameWidth     = 72
)

func frameWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultFrameWidth
	}
	if width > maxFrameWidth {
		return maxFrameWidth
	}
	return width
}

// Frame wraps a title and message between rules of the given width
func Frame(title, message string, width int) string {
	rule := strings.Repeat("━", width)
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(title + "\n")
	if message != "" {
		b.WriteString(message + "\n")
	}
	b.WriteString(rule)
	return b.String()
}

// RenderModal shows a failure notice sized to the terminal
func RenderModal(title, message string) {
	fmt.Printf("%s%s%s\n", Red, Frame(title, message, frameWidth()), Reset)
}
