// Package ui provides semantic text formatting for CLI output.
//
// Formatters render with color when the terminal supports it. When
// NO_COLOR is set or the terminal has no color support, text decorations
// (backticks, quotes, parentheses) are used instead.
//
//	ui.Code.Sprint("audiocrypt keys generate") // Commands
//	ui.Path.Sprint("song.enc.wav")             // File paths
//	ui.Success.Sprint("✓")                     // Success indicators
//	ui.Error.Sprint("✗")                       // Error indicators
//	ui.Highlight.Sprint("aes-256-cbc")         // User values
//	ui.Muted.Sprint("not set")                 // De-emphasized text
//
// Abbreviate shortens the long decimal integers found in key text, and
// Banner renders the program name in ASCII art.
package ui
