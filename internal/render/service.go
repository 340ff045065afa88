// Package render wraps the D2 diagram engine behind a small service: validate
// first, render second, and re-assert the full configuration on every call.
package render

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"oss.terrastruct.com/d2/d2graph"
	"oss.terrastruct.com/d2/d2layouts/d2dagrelayout"
	"oss.terrastruct.com/d2/d2layouts/d2elklayout"
	"oss.terrastruct.com/d2/d2lib"
	"oss.terrastruct.com/d2/d2renderers/d2svg"
	"oss.terrastruct.com/d2/d2target"
	"oss.terrastruct.com/d2/lib/textmeasure"

	"github.com/d2pad/d2pad/internal/model"
	"github.com/d2pad/d2pad/internal/svgx"
)

// Error taxonomy for the render path. Both carry a human-readable message and
// neither is retried automatically; further user edits are the only retry.
var (
	// ErrValidation means the source is not valid diagram syntax.
	ErrValidation = errors.New("diagram validation failed")
	// ErrRenderEngine means the engine failed after validation passed.
	ErrRenderEngine = errors.New("render engine failed")
)

// genericValidationMessage is used when the engine reports a failure without
// any usable message text.
const genericValidationMessage = "diagram source is not valid"

// Renderer is the interface the orchestrator renders through.
type Renderer interface {
	Render(ctx context.Context, source string, cfg model.RenderConfig) (*model.RenderResult, error)
}

// Service renders D2 source to SVG. It owns the engine's one-time
// initialization; all per-call state is passed in via model.RenderConfig, so
// a Service is safe to share across render cycles.
type Service struct {
	mu          sync.Mutex
	ruler       *textmeasure.Ruler
	initialized bool
}

// NewService creates a render service. Engine initialization is deferred to
// the first Render call.
func NewService() *Service {
	return &Service{}
}

// ensureEngine performs one-time engine setup. The text ruler is expensive to
// build and reusable across renders.
func (s *Service) ensureEngine() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	ruler, err := textmeasure.NewRuler()
	if err != nil {
		return fmt.Errorf("init text ruler: %w", err)
	}
	s.ruler = ruler
	s.initialized = true
	log.Printf("Render engine initialized")
	return nil
}

// Render validates and renders diagram source under the given configuration.
// Validation failures are reported without rendering, so the engine never
// emits a placeholder "broken diagram" graphic into the preview. The returned
// markup is sanitized into strict XML.
func (s *Service) Render(ctx context.Context, source string, cfg model.RenderConfig) (*model.RenderResult, error) {
	start := time.Now()

	if err := s.ensureEngine(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRenderEngine, err)
	}
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("%w: diagram source is empty", ErrValidation)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// The engine's configuration is global from its own point of view, so the
	// full set of options is rebuilt for every call rather than carried over.
	compileOpts := s.compileOptions(cfg)
	renderOpts := renderOptions(cfg)

	if _, err := d2lib.Parse(ctx, source, compileOpts); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, validationMessage(err))
	}

	requestID := newRequestID()

	diagram, _, err := d2lib.Compile(ctx, source, compileOpts, renderOpts)
	if err != nil {
		// Compile re-runs parsing, so semantic errors land here even though
		// the syntax already passed Parse.
		return nil, fmt.Errorf("%w: %s", ErrValidation, validationMessage(err))
	}
	if diagram == nil {
		return nil, fmt.Errorf("%w: engine returned no diagram", ErrRenderEngine)
	}

	out, err := d2svg.Render(diagram, renderOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRenderEngine, validationMessage(err))
	}

	res := &model.RenderResult{
		RequestID: requestID,
		SVG:       svgx.Sanitize(string(out)),
		Duration:  time.Since(start),
	}
	log.Printf("Rendered diagram: request=%s theme=%s bytes=%d in %s",
		res.RequestID, cfg.ThemeKey, len(res.SVG), res.Duration)
	return res, nil
}

// compileOptions builds per-call compile options. Strict security compiles
// with no filesystem, so import directives fail cleanly; loose resolves them
// against the user's home directory.
func (s *Service) compileOptions(cfg model.RenderConfig) *d2lib.CompileOptions {
	opts := &d2lib.CompileOptions{
		Ruler:          s.ruler,
		LayoutResolver: layoutResolver,
	}
	if cfg.Security == model.SecurityLoose {
		if home, err := os.UserHomeDir(); err == nil {
			opts.FS = os.DirFS(home)
		}
	}
	return opts
}

func layoutResolver(engine string) (d2graph.LayoutGraph, error) {
	switch strings.ToLower(engine) {
	case "", "dagre":
		return func(ctx context.Context, g *d2graph.Graph) error {
			return d2dagrelayout.Layout(ctx, g, nil)
		}, nil
	case "elk":
		return func(ctx context.Context, g *d2graph.Graph) error {
			return d2elklayout.Layout(ctx, g, nil)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported layout engine %q", engine)
	}
}

func renderOptions(cfg model.RenderConfig) *d2svg.RenderOpts {
	themeID := cfg.ThemeID
	pad := cfg.Pad
	return &d2svg.RenderOpts{
		ThemeID:        &themeID,
		Pad:            &pad,
		ThemeOverrides: themeOverrides(cfg.Variables),
		Font:           cfg.FontFamily,
	}
}

// themeOverrides translates the name->value override map into the engine's
// palette struct. Names outside the palette (such as font-family, which is
// carried separately) are ignored.
func themeOverrides(vars map[string]string) *d2target.ThemeOverrides {
	if len(vars) == 0 {
		return nil
	}

	o := &d2target.ThemeOverrides{}
	set := false
	assign := func(dst **string, value string) {
		v := value
		*dst = &v
		set = true
	}

	for name, value := range vars {
		switch strings.ToUpper(name) {
		case "N1":
			assign(&o.N1, value)
		case "N2":
			assign(&o.N2, value)
		case "N3":
			assign(&o.N3, value)
		case "N4":
			assign(&o.N4, value)
		case "N5":
			assign(&o.N5, value)
		case "N6":
			assign(&o.N6, value)
		case "N7":
			assign(&o.N7, value)
		case "B1":
			assign(&o.B1, value)
		case "B2":
			assign(&o.B2, value)
		case "B3":
			assign(&o.B3, value)
		case "B4":
			assign(&o.B4, value)
		case "B5":
			assign(&o.B5, value)
		case "B6":
			assign(&o.B6, value)
		case "AA2":
			assign(&o.AA2, value)
		case "AA4":
			assign(&o.AA4, value)
		case "AA5":
			assign(&o.AA5, value)
		case "AB4":
			assign(&o.AB4, value)
		case "AB5":
			assign(&o.AB5, value)
		}
	}

	if !set {
		return nil
	}
	return o
}

// validationMessage extracts a clean human-readable message from an engine
// error, falling back to a generic one when the engine gives nothing usable.
func validationMessage(err error) string {
	if err == nil {
		return genericValidationMessage
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return genericValidationMessage
	}
	return msg
}

// newRequestID returns a fresh unique identifier for a render call, so
// concurrent renders can never collide on a key.
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
