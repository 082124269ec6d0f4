package swf

import (
	"fmt"
	"strings"
)

// Exporter renders a fully parsed movie into some target format. The
// envelope guarantees the tag sequence is loaded and non-empty before an
// exporter is invoked.
type Exporter interface {
	Export(m *Movie, forceStroke bool) ([]byte, error)
}

// SVGExporter is the default exporter. It emits an SVG document scaffold
// sized from the frame rectangle (twips to pixels at 20:1) with one group
// per tag record; tag payloads are opaque to this package, so the groups
// carry the tag code for downstream tooling rather than rendered geometry.
type SVGExporter struct{}

const twipsPerPixel = 20

func (e *SVGExporter) Export(m *Movie, forceStroke bool) ([]byte, error) {
	h := m.Header()
	tags, err := m.Tags()
	if err != nil {
		return nil, err
	}

	fs := h.FrameSize
	width := float64(fs.Width()) / twipsPerPixel
	height := float64(fs.Height()) / twipsPerPixel

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%gpx" height="%gpx" viewBox="%g %g %g %g">`+"\n",
		width, height,
		float64(fs.Xmin)/twipsPerPixel, float64(fs.Ymin)/twipsPerPixel, width, height)
	fmt.Fprintf(&b, "<desc>version %d, %d frames at %g fps</desc>\n",
		h.Version, h.FrameCount, h.FrameRate.Float64())
	if forceStroke {
		b.WriteString(`<g stroke="#000000" stroke-width="1">` + "\n")
	} else {
		b.WriteString("<g>\n")
	}
	for i, t := range tags {
		fmt.Fprintf(&b, `<g id="tag-%d" data-code="%d"/>`+"\n", i, t.Code)
	}
	b.WriteString("</g>\n</svg>\n")
	return []byte(b.String()), nil
}
