// Package ui provides semantic console formatting for devops output.
//
// Formatters carry both a color and a plain-text fallback so output stays
// readable when colors are disabled (NO_COLOR, dumb terminals, pipes):
//
//	fmt.Println(ui.Success.Sprint("✓") + " Secret " + ui.Highlight.Sprint(name) + " updated")
//
// MaskSecret must be used whenever a secret value could reach the console.
package ui
