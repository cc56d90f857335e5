// File: renderer.go
// Title: Natural Language Rendering
// Description: Hook for rendering a property as natural language text.
//              Language-specific renderers live outside this package.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import "time"

// Renderer converts a property into natural language relative to ref
type Renderer interface {
	Render(p *Property, ref time.Time) string
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(p *Property, ref time.Time) string

// Render calls f(p, ref)
func (f RendererFunc) Render(p *Property, ref time.Time) string {
	return f(p, ref)
}

// ToNaturalLanguage renders p with r. A nil renderer yields the TIMEX text.
func (p *Property) ToNaturalLanguage(r Renderer, ref time.Time) string {
	if r == nil {
		return p.Timex()
	}
	return r.Render(p, ref)
}
