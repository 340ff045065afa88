// Package model contains the data types shared across the editor: render
// configuration and results, theme presets, and the display state that keeps
// the preview and error panel mutually exclusive.
package model
