package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/pagespec"
	"github.com/ByLCY/folio/renderer"
	canvasrenderer "github.com/ByLCY/folio/renderer/canvas"
	"github.com/ByLCY/folio/textio"
)

const (
	defaultFont       = "Monospace 12"
	defaultHeaderFont = "Monospace Bold 12"
	defaultGutter     = 40.0
	defaultHeaderSep  = 20.0
)

func main() {
	var (
		output       = flag.String("o", "", "output file (default stdout)")
		formatName   = flag.String("format", "ps", "output format: ps, pdf or svg")
		paperName    = flag.String("paper", "a4", "paper size: a4, letter, legal, a3 or WIDTHxHEIGHT")
		columns      = flag.Int("columns", 1, "number of output columns")
		fontDesc     = flag.String("font", defaultFont, "body font description")
		headerFont   = flag.String("header-font", defaultHeaderFont, "header font description")
		fontFile     = flag.String("font-file", "", "font file for the body font family")
		headerFile   = flag.String("header-font-file", "", "font file for the header font family")
		margins      = flag.String("margins", "", "margin shorthand, one to four lengths (top,right,bottom,left)")
		topMargin    = flag.Float64("top-margin", 36, "top margin in points")
		bottomMargin = flag.Float64("bottom-margin", 36, "bottom margin in points")
		leftMargin   = flag.Float64("left-margin", 36, "left margin in points")
		rightMargin  = flag.Float64("right-margin", 36, "right margin in points")
		gutter       = flag.Float64("gutter-width", defaultGutter, "space between columns in points")
		landscape    = flag.Bool("landscape", false, "landscape output")
		rtl          = flag.Bool("rtl", false, "right-to-left layout")
		justify      = flag.Bool("justify", false, "justify the layout")
		wrap         = flag.Bool("wrap", true, "wrap long lines at the column width")
		markup       = flag.Bool("markup", false, "treat the whole input as a single marked-up paragraph")
		stretch      = flag.Bool("stretch-chars", false, "stretch characters vertically to fill LPI rows")
		header       = flag.Bool("header", false, "draw a page header on each page")
		encoding     = flag.String("encoding", "", "input encoding (IANA name, default UTF-8)")
		lpi          = flag.Float64("lpi", 0, "lines per inch (0 = natural line height)")
		cpi          = flag.Float64("cpi", 0, "characters per inch (0 = no fixed pitch)")
		debugPath    = flag.String("debug", "", "write the layout result as JSON to this path")
	)
	flag.Parse()

	if err := run(flag.Args(), options{
		output:     *output,
		formatName: *formatName,
		paperName:  *paperName,
		columns:    *columns,
		fontDesc:   *fontDesc,
		headerFont: *headerFont,
		fontFile:   *fontFile,
		headerFile: *headerFile,
		margins:    *margins,
		marginsSet: flagWasSet(),
		top:        *topMargin,
		bottom:     *bottomMargin,
		left:       *leftMargin,
		right:      *rightMargin,
		gutter:     *gutter,
		landscape:  *landscape,
		rtl:        *rtl,
		justify:    *justify,
		wrap:       *wrap,
		markup:     *markup,
		stretch:    *stretch,
		header:     *header,
		encoding:   *encoding,
		lpi:        *lpi,
		cpi:        *cpi,
		debugPath:  *debugPath,
	}); err != nil {
		log.Fatalf("folio: %v", err)
	}
}

// flagWasSet records which flags appeared on the command line, so the
// margin shorthand does not clobber an explicitly set individual margin.
func flagWasSet() map[string]bool {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

type options struct {
	output     string
	formatName string
	paperName  string
	columns    int
	fontDesc   string
	headerFont string
	fontFile   string
	headerFile string
	margins    string
	marginsSet map[string]bool
	top        float64
	bottom     float64
	left       float64
	right      float64
	gutter     float64
	landscape  bool
	rtl        bool
	justify    bool
	wrap       bool
	markup     bool
	stretch    bool
	header     bool
	encoding   string
	lpi        float64
	cpi        float64
	debugPath  string
}

// run wires input reading, layout and rendering together.
func run(args []string, opts options) error {
	format, err := renderer.ParseFormat(opts.formatName)
	if err != nil {
		return err
	}
	paper, err := pagespec.ParsePaper(opts.paperName)
	if err != nil {
		return err
	}
	bodyFont, err := pagespec.ParseFont(opts.fontDesc, 12)
	if err != nil {
		return err
	}
	hdrFont, err := pagespec.ParseFont(opts.headerFont, 12)
	if err != nil {
		return err
	}

	top, bottom, left, right := opts.top, opts.bottom, opts.left, opts.right
	if opts.margins != "" {
		t, r, b, l, err := pagespec.ParseMargins(opts.margins)
		if err != nil {
			return err
		}
		if !opts.marginsSet["top-margin"] {
			top = t
		}
		if !opts.marginsSet["right-margin"] {
			right = r
		}
		if !opts.marginsSet["bottom-margin"] {
			bottom = b
		}
		if !opts.marginsSet["left-margin"] {
			left = l
		}
	}

	in := io.Reader(os.Stdin)
	filename := "stdin"
	if len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer file.Close()
		in = file
		filename = args[0]
	}
	text, err := textio.ReadAll(in, opts.encoding)
	if err != nil {
		return err
	}

	direction := layout.LeftToRight
	if opts.rtl {
		direction = layout.RightToLeft
	}
	cfg := layout.PageConfig{
		PageWidth:      paper.Width,
		PageHeight:     paper.Height,
		Columns:        opts.columns,
		GutterWidth:    opts.gutter,
		TopMargin:      top,
		BottomMargin:   bottom,
		LeftMargin:     left,
		RightMargin:    right,
		HeaderSep:      defaultHeaderSep,
		Landscape:      opts.landscape,
		LPI:            opts.lpi,
		CPI:            opts.cpi,
		WordWrap:       opts.wrap,
		Justify:        opts.justify,
		StretchChars:   opts.stretch,
		Markup:         opts.markup,
		SeparationLine: true,
		DrawHeader:     opts.header,
		Direction:      direction,
		Font:           bodyFont,
		HeaderFont:     hdrFont,
		Filename:       filename,
	}
	cfg, err = cfg.Finalize(!format.RotatesLandscape())
	if err != nil {
		return err
	}

	fontFiles := map[string]string{}
	if opts.fontFile != "" {
		fontFiles[bodyFont.Family] = opts.fontFile
	}
	if opts.headerFile != "" {
		fontFiles[hdrFont.Family] = opts.headerFile
	}
	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Format:    format,
		FontFiles: fontFiles,
	})

	result, err := layout.Build(text, cfg, layout.BuildOptions{Typesetter: r})
	if err != nil {
		return err
	}
	if opts.debugPath != "" {
		if err := layout.WriteDebugJSON(result, opts.debugPath); err != nil {
			return fmt.Errorf("writing debug JSON: %w", err)
		}
	}

	data, err := r.Render(result)
	if err != nil {
		return err
	}
	if opts.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.output, err)
	}
	return nil
}
