package dump

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/npillmayer/containers/bytestr"
	"github.com/npillmayer/containers/vector"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

const spareMark = "·"

type palette struct {
	live, spare, term *color.Color
}

func makePalette(on bool) palette {
	p := palette{
		live:  color.New(color.FgBlue),
		spare: color.New(color.FgHiBlack),
		term:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.live, p.spare, p.term} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

type cell struct {
	text  string
	color *color.Color
}

// Vector writes the slots of v to w: live elements first, followed by the
// spare capacity. A nil config selects DefaultConfig.
func Vector[T any](w io.Writer, v *vector.Vector[T], config *Config) error {
	if config == nil {
		config = &DefaultConfig
	}
	p := makePalette(config.Color)
	cells := make([]cell, 0, v.Cap())
	for _, x := range v.All() {
		cells = append(cells, cell{text: fmt.Sprint(x), color: p.live})
	}
	for i := v.Len(); i < v.Cap(); i++ {
		cells = append(cells, cell{text: spareMark, color: p.spare})
	}
	size := uint64(v.Cap()) * uint64(reflect.TypeFor[T]().Size())
	var b strings.Builder
	fmt.Fprintf(&b, "vector len=%d cap=%d (%s)\n", v.Len(), v.Cap(), humanize.Bytes(size))
	layoutCells(&b, cells, config)
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "dump vector")
}

// String writes the byte slots of s to w, including the terminator and the
// spare capacity, followed by the payload wrapped at line break
// opportunities. A nil config selects DefaultConfig.
func String(w io.Writer, s *bytestr.String, config *Config) error {
	if config == nil {
		config = &DefaultConfig
	}
	p := makePalette(config.Color)
	cells := make([]cell, 0, s.Cap()+1)
	for _, c := range s.All() {
		cells = append(cells, cell{text: byteText(c), color: p.live})
	}
	cells = append(cells, cell{text: `\0`, color: p.term})
	for i := s.Len(); i < s.Cap(); i++ {
		cells = append(cells, cell{text: spareMark, color: p.spare})
	}
	var b strings.Builder
	fmt.Fprintf(&b, "string len=%d cap=%d (%s)\n", s.Len(), s.Cap(),
		humanize.Bytes(uint64(s.Cap()+1)))
	layoutCells(&b, cells, config)
	for _, line := range wrapText(s.String(), config.LineWidth, config.context()) {
		fmt.Fprintf(&b, "  | %s\n", line)
	}
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "dump string")
}

func byteText(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return string(c)
	}
	return fmt.Sprintf("%02x", c)
}

// layoutCells writes cells of uniform width, wrapping lines at the
// configured line width.
func layoutCells(b *strings.Builder, cells []cell, config *Config) {
	ctx := config.context()
	cw := 1
	for _, c := range cells {
		cw = max(cw, width(c.text, ctx))
	}
	perLine := max(1, (config.LineWidth-1)/(cw+3))
	for i, c := range cells {
		if i > 0 && i%perLine == 0 {
			b.WriteString("|\n")
		}
		b.WriteString("| ")
		c.color.Fprint(b, c.text)
		b.WriteString(strings.Repeat(" ", cw-width(c.text, ctx)+1))
	}
	if len(cells) > 0 {
		b.WriteString("|")
	}
	b.WriteString("\n")
}

// wrapText breaks text into lines of at most linewidth positions, breaking at
// UAX#14 line break opportunities. Fragments longer than a line get a line of
// their own.
func wrapText(text string, linewidth int, ctx *uax11.Context) []string {
	if text == "" {
		return nil
	}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	var lines []string
	var line strings.Builder
	spaceleft := linewidth
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := width(frag, ctx)
		if fraglen > spaceleft && line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
			spaceleft = linewidth
		}
		line.WriteString(frag)
		spaceleft -= fraglen
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
