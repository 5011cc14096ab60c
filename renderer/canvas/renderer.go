package canvasrenderer

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/ps"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas and doubles
// as the layout.Typesetter shaping backend, so measurement and drawing use
// the same font faces.
type Renderer struct {
	format renderer.Format

	// fontFiles maps a family name to a font file; families without an
	// entry are resolved through the system font directories.
	fontFiles map[string]string

	fontMu   sync.Mutex
	families map[string]*canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	Format    renderer.Format
	FontFiles map[string]string
}

// NewRenderer creates a renderer for the given output format using system
// fonts only.
func NewRenderer(format renderer.Format) *Renderer {
	return NewRendererWithOptions(Options{Format: format})
}

// NewRendererWithOptions creates a renderer with explicit font files.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		format:    opts.Format,
		fontFiles: map[string]string{},
		families:  map[string]*canvas.FontFamily{},
	}
	for name, path := range opts.FontFiles {
		if name != "" && path != "" {
			r.fontFiles[name] = path
		}
	}
	return r
}

// Render serializes the result into the selected page-description format.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("canvasrenderer: nil layout result")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("canvasrenderer: no pages to render")
	}

	switch r.format {
	case renderer.FormatPDF:
		return r.renderPDF(result)
	case renderer.FormatPostScript:
		return r.renderPS(result)
	case renderer.FormatSVG:
		return r.renderSVG(result)
	}
	return nil, fmt.Errorf("canvasrenderer: unsupported format %v", r.format)
}

func (r *Renderer) renderPDF(result *layout.Result) ([]byte, error) {
	var buf bytes.Buffer
	writer := pdf.New(&buf, toMm(result.SurfaceWidth), toMm(result.SurfaceHeight), nil)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(toMm(result.SurfaceWidth), toMm(result.SurfaceHeight))
		}
		c, err := r.pageCanvas(page, result)
		if err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("canvasrenderer: writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderPS(result *layout.Result) ([]byte, error) {
	var buf bytes.Buffer
	writer := ps.New(&buf, toMm(result.SurfaceWidth), toMm(result.SurfaceHeight), nil)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(toMm(result.SurfaceWidth), toMm(result.SurfaceHeight))
		}
		c, err := r.pageCanvas(page, result)
		if err != nil {
			return nil, err
		}
		if result.Landscape {
			// The PostScript surface stays portrait; rotate the wide
			// logical page onto it.
			view := canvas.Identity.Translate(toMm(result.PageHeight), 0).Rotate(90)
			c.RenderViewTo(writer, view)
		} else {
			c.RenderTo(writer)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("canvasrenderer: writing PostScript: %w", err)
	}
	return buf.Bytes(), nil
}

// renderSVG stacks all pages vertically in a single SVG canvas, since SVG
// has no page stream.
func (r *Renderer) renderSVG(result *layout.Result) ([]byte, error) {
	var buf bytes.Buffer
	pageH := toMm(result.SurfaceHeight)
	n := len(result.Pages)
	writer := svg.New(&buf, toMm(result.SurfaceWidth), pageH*float64(n), nil)
	for i, page := range result.Pages {
		c, err := r.pageCanvas(page, result)
		if err != nil {
			return nil, err
		}
		c.RenderViewTo(writer, canvas.Identity.Translate(0, pageH*float64(n-1-i)))
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("canvasrenderer: writing SVG: %w", err)
	}
	return buf.Bytes(), nil
}

// pageCanvas draws one page onto a fresh canvas in logical page
// coordinates.
func (r *Renderer) pageCanvas(page layout.Page, result *layout.Result) (*canvas.Canvas, error) {
	c := canvas.New(toMm(result.PageWidth), toMm(result.PageHeight))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // match the layout's top-left origin

	for _, rule := range page.Rules {
		drawRule(ctx, rule)
	}
	for _, line := range page.Header {
		if err := r.drawLine(ctx, line, result, 1); err != nil {
			return nil, err
		}
	}
	for _, line := range page.Body {
		scale := 1.0
		if line.Stretch {
			scale = result.ScaleY
		}
		if err := r.drawLine(ctx, line, result, scale); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func drawRule(ctx *canvas.Context, rule layout.Rule) {
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(toMm(rule.X2-rule.X1), toMm(rule.Y2-rule.Y1))
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(toMm(rule.StrokeWidth))
	ctx.DrawPath(toMm(rule.X1), toMm(rule.Y1), p)
}

// drawLine shows one placed line at its baseline. A scale other than 1
// stretches the glyphs vertically about the baseline without touching the
// baseline position itself.
func (r *Renderer) drawLine(ctx *canvas.Context, line layout.PlacedLine, result *layout.Result, scale float64) error {
	face, err := r.fontFace(line.Font)
	if err != nil {
		return err
	}
	x, y := toMm(line.X), toMm(line.Y)
	show := func() {
		if line.Justify {
			drawJustified(ctx, face, line, toMm(result.ColumnWidth))
			return
		}
		ctx.DrawText(x, y, canvas.NewTextLine(face, line.Content, canvas.Left))
	}
	if scale != 1 {
		// Baseline in canvas coordinates (y up).
		yc := toMm(result.PageHeight) - y
		m := canvas.Identity.Translate(x, yc).Scale(1, scale).Translate(-x, -yc)
		ctx.SetView(m)
		show()
		ctx.ResetView()
		return nil
	}
	show()
	return nil
}

// drawJustified widens the gaps between words so the line fills the column
// width (mm). Lines with fewer than two words, or wider than the column
// already, draw unchanged.
func drawJustified(ctx *canvas.Context, face *canvas.FontFace, line layout.PlacedLine, columnWidth float64) {
	x, y := toMm(line.X), toMm(line.Y)
	words := strings.Fields(line.Content)
	if len(words) < 2 {
		ctx.DrawText(x, y, canvas.NewTextLine(face, line.Content, canvas.Left))
		return
	}
	wordsWidth := 0.0
	for _, w := range words {
		wordsWidth += face.TextWidth(w)
	}
	gap := (columnWidth - wordsWidth) / float64(len(words)-1)
	if gap <= 0 {
		ctx.DrawText(x, y, canvas.NewTextLine(face, line.Content, canvas.Left))
		return
	}
	for _, w := range words {
		ctx.DrawText(x, y, canvas.NewTextLine(face, w, canvas.Left))
		x += face.TextWidth(w) + gap
	}
}

// MeasureParagraph implements layout.Typesetter with a greedy word-char
// wrap: lines break at whitespace runs, and a token wider than the wrap
// width on its own is split inside the token.
func (r *Renderer) MeasureParagraph(text string, opts layout.ShapingOptions) ([]layout.ShapedLine, error) {
	face, err := r.fontFace(opts.Font)
	if err != nil {
		return nil, err
	}

	var contents []string
	switch opts.Wrap {
	case layout.WrapNone:
		contents = strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	default:
		contents = greedyWrap(text, toMm(opts.WrapWidth), face)
	}
	if len(contents) == 0 {
		contents = []string{""}
	}

	metrics := face.Metrics()
	lines := make([]layout.ShapedLine, 0, len(contents))
	for _, content := range contents {
		sl := layout.ShapedLine{
			Content: content,
			Width:   toPt(face.TextWidth(content)),
			Height:  toPt(metrics.LineHeight),
			Ascent:  toPt(metrics.Ascent),
		}
		if content != "" {
			bounds := canvas.NewTextLine(face, content, canvas.Left).Bounds()
			sl.InkWidth = toPt(bounds.W())
			sl.InkHeight = toPt(bounds.H())
		}
		lines = append(lines, sl)
	}
	return lines, nil
}

// ApproximateCharWidth implements layout.Typesetter: the larger of an
// approximate character and digit advance, in points.
func (r *Renderer) ApproximateCharWidth(font layout.FontDesc) (float64, error) {
	face, err := r.fontFace(font)
	if err != nil {
		return 0, err
	}
	w := face.TextWidth("x")
	if d := face.TextWidth("0"); d > w {
		w = d
	}
	return toPt(w), nil
}

// greedyWrap splits content into lines no wider than limit (mm), breaking
// at whitespace boundaries first and inside overlong tokens as a fallback.
func greedyWrap(content string, limit float64, face *canvas.FontFace) []string {
	if limit <= 0 {
		return strings.Split(strings.ReplaceAll(content, "\r", ""), "\n")
	}

	var lines []string
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 && !force {
			return
		}
		lines = append(lines, builder.String())
		builder.Reset()
		currentWidth = 0
	}
	appendToken := func(token string) {
		builder.WriteString(token)
		currentWidth += face.TextWidth(token)
	}

	for _, token := range tokenize(content) {
		if token == "\n" {
			emit(true)
			continue
		}
		tokenWidth := face.TextWidth(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token)
			continue
		}
		for _, chunk := range splitTokenByWidth(token, limit, face) {
			chunkWidth := face.TextWidth(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk)
		}
	}
	emit(len(lines) == 0)
	return lines
}

// tokenize splits content into alternating runs of whitespace and
// non-whitespace; newlines become their own tokens.
func tokenize(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}
	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			continue
		}
		isSpace := r == ' ' || r == '\t'
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

// splitTokenByWidth cuts a single token into chunks that each fit limit.
func splitTokenByWidth(token string, limit float64, face *canvas.FontFace) []string {
	var chunks []string
	var builder strings.Builder
	current := 0.0
	for _, r := range token {
		w := face.TextWidth(string(r))
		if builder.Len() > 0 && current+w > limit {
			chunks = append(chunks, builder.String())
			builder.Reset()
			current = 0
		}
		builder.WriteRune(r)
		current += w
	}
	if builder.Len() > 0 {
		chunks = append(chunks, builder.String())
	}
	return chunks
}

func (r *Renderer) fontFace(desc layout.FontDesc) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily(desc)
	if err != nil {
		return nil, err
	}
	return family.Face(desc.Size, canvas.Black, parseFontStyle(desc.Style), canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(desc layout.FontDesc) (*canvas.FontFamily, error) {
	key := desc.Family + "|" + desc.Style
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.families[key]; ok {
		return family, nil
	}
	style := parseFontStyle(desc.Style)
	family := canvas.NewFontFamily(desc.Family)
	if path, ok := r.fontFiles[desc.Family]; ok {
		if err := family.LoadFontFile(path, style); err != nil {
			return nil, fmt.Errorf("canvasrenderer: loading font file %s: %w", path, err)
		}
	} else if err := family.LoadSystemFont(desc.Family, style); err != nil {
		return nil, fmt.Errorf("canvasrenderer: loading system font %q: %w", desc.Family, err)
	}
	r.families[key] = family
	return family, nil
}

func parseFontStyle(style string) canvas.FontStyle {
	s := strings.ToLower(style)
	result := canvas.FontRegular
	if strings.Contains(s, "bold") {
		result = canvas.FontBold
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		result |= canvas.FontItalic
	}
	return result
}

// toMm converts points (layout units) to millimeters (canvas units).
func toMm(pt float64) float64 { return pt * layout.PtToMm }

// toPt converts millimeters to points.
func toPt(mm float64) float64 { return mm * layout.MmToPt }
