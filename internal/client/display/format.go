package display

import (
	"encoding/json"
	"fmt"
)

// JSON indents v for the terminal; a nil map prints as {}
func JSON(v any) (string, error) {
	if m, ok := v.(map[string]any); ok && m == nil {
		v = map[string]any{}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("formatting JSON: %w", err)
	}
	return string(data), nil
}

// PrintJSON prints v indented, in color
func PrintJSON(color string, v any) {
	text, err := JSON(v)
	if err != nil {
		Println(Red, err.Error())
		return
	}
	Println(color, text)
}

// PrintEnvelope prints a call outcome: a status line green when accepted,
// red otherwise, then the content
func PrintEnvelope(ok bool, token string, content map[string]any) {
	color := Green
	if !ok {
		color = Red
	}
	fmt.Printf("%sStatus: %t (%s)%s\n", color, ok, token, Reset)
	PrintJSON(White, content)
}
