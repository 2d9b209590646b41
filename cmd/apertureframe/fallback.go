package main

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/barasher/go-exiftool"

	"github.com/nobothehobo/Aperture-Frame/exifx"
)

// exiftoolService shells out to an external exiftool process for files the
// native parser reports as unavailable (stripped EXIF, odd vendor framing).
// The process is started lazily so the common path never pays for it.
type exiftoolService struct {
	et *exiftool.Exiftool
	mu sync.Mutex
}

func (s *exiftoolService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.et != nil {
		s.et.Close()
		s.et = nil
	}
}

func (s *exiftoolService) ensure() (*exiftool.Exiftool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.et != nil {
		return s.et, nil
	}
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, err
	}
	s.et = et
	return s.et, nil
}

// Metadata extracts what exiftool reports and maps it onto the same
// normalized shape the native parser produces.
func (s *exiftoolService) Metadata(path string) (exifx.Metadata, bool) {
	et, err := s.ensure()
	if err != nil {
		// exiftool likely not installed
		logger.Warn("exiftool unavailable", "err", err)
		return exifx.Metadata{}, false
	}

	for _, fi := range et.ExtractMetadata(path) {
		if fi.Err != nil {
			continue
		}
		var m exifx.Metadata
		m.Raw = make(map[string]string)
		if v, ok := fi.Fields["Model"].(string); ok {
			m.Camera = v
		} else if v, ok := fi.Fields["Make"].(string); ok {
			m.Camera = v
		}
		if v, ok := fi.Fields["LensModel"].(string); ok {
			m.Lens = v
		}
		if v, ok := numField(fi.Fields["FNumber"]); ok {
			m.Aperture = exifx.FormatAperture(v)
		}
		if v, ok := numField(fi.Fields["ExposureTime"]); ok {
			m.Shutter = exifx.FormatShutter(v)
		}
		if v, ok := numField(fi.Fields["ISO"]); ok && v > 0 {
			m.ISO = strconv.Itoa(int(v))
		}
		if v, ok := numField(fi.Fields["FocalLength"]); ok && v > 0 {
			m.Focal = strconv.Itoa(int(v + 0.5))
		}
		if v, ok := fi.Fields["DateTimeOriginal"].(string); ok {
			if t, err := time.Parse("2006:01:02 15:04:05", v); err == nil {
				m.Date = t.Format("2006-01-02 15:04:05")
			}
		}
		return m, m.Camera != "" || m.Aperture != "" || m.Shutter != ""
	}
	return exifx.Metadata{}, false
}

// numField copes with exiftool reporting numbers as JSON floats or as
// strings like "1/250" or "50.0 mm".
func numField(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		x = strings.TrimSuffix(strings.TrimSpace(x), " mm")
		if num, den, ok := strings.Cut(x, "/"); ok {
			n, errN := strconv.ParseFloat(num, 64)
			d, errD := strconv.ParseFloat(den, 64)
			if errN == nil && errD == nil && d != 0 {
				return n / d, true
			}
			return 0, false
		}
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	}
	return 0, false
}
