package apertureframe

import (
	"strings"

	"github.com/nobothehobo/Aperture-Frame/exifx"
)

// RenderCaption substitutes metadata placeholders in a caption template.
// Recognized placeholders are {aperture}, {shutter}, {iso}, {focal},
// {camera}, {lens} and {date}; absent fields render as an em-dash. This is
// plain textual substitution, no conditional sections.
func RenderCaption(template string, meta exifx.Metadata) string {
	sub := func(s string) string {
		if s == "" {
			return exifx.NoValue
		}
		return s
	}
	r := strings.NewReplacer(
		"{aperture}", sub(meta.Aperture),
		"{shutter}", sub(meta.Shutter),
		"{iso}", sub(meta.ISO),
		"{focal}", sub(meta.Focal),
		"{camera}", sub(meta.Camera),
		"{lens}", sub(meta.Lens),
		"{date}", sub(meta.Date),
	)
	return r.Replace(template)
}
