package errors

import (
	"math"
	"net/url"
	"strings"
)

// ValidateURL checks that rawURL is an absolute http(s) URL with a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidURL, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidURL, "URL must use http or https scheme")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidURL, err, "malformed URL")
	}
	if u.Host == "" {
		return New(ErrCodeInvalidURL, "URL has no host")
	}
	return nil
}

// ValidateFraction checks that a width fraction is in (0, 1].
func ValidateFraction(f float64) error {
	if math.IsNaN(f) || f <= 0 || f > 1 {
		return New(ErrCodeInvalidInput, "fraction must be in (0, 1], got %g", f)
	}
	return nil
}

// ValidateSubplots checks a subplot grid of rows x cols.
func ValidateSubplots(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return New(ErrCodeInvalidInput, "subplots must be at least 1x1, got %dx%d", rows, cols)
	}
	return nil
}

// ValidateWidth checks a figure width in points.
func ValidateWidth(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return New(ErrCodeInvalidInput, "width must be positive, got %g", w)
	}
	return nil
}

// ValidateWeight checks a font weight name.
func ValidateWeight(w string) error {
	switch w {
	case "light", "normal", "bold":
		return nil
	}
	return New(ErrCodeInvalidInput, "font weight must be light, normal or bold, got %q", w)
}
