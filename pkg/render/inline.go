package render

import "strings"

// Segment is one piece of a steps-to-reproduce block: either plain
// text or a resolved inline image.
type Segment struct {
	Text string

	// Set when the segment is an image reference.
	ImageName string
	ImagePath string
}

// IsImage reports whether the segment references an image.
func (s Segment) IsImage() bool { return s.ImageName != "" }

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

func hasImageExtension(token string) bool {
	lower := strings.ToLower(token)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// cleanToken strips surrounding punctuation from a candidate filename.
func cleanToken(token string) string {
	return strings.Trim(token, ".,;:")
}

// SplitSteps parses free-form reproduction steps into an ordered
// sequence of text and image segments. images maps a user-facing
// filename (with or without a leading slash) to its storage path.
// Tokens that look like images but resolve to nothing stay text;
// empty lines are dropped.
func SplitSteps(steps string, images map[string]string) []Segment {
	if steps == "" {
		return nil
	}

	var segments []Segment
	for _, line := range strings.Split(steps, "\n") {
		name, path, ok := resolveImageToken(line, images)
		if !ok {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				segments = append(segments, Segment{Text: trimmed})
			}
			continue
		}

		rest := strings.TrimSpace(strings.Replace(line, name, "", 1))
		if rest != "" {
			segments = append(segments, Segment{Text: rest})
		}
		segments = append(segments, Segment{ImageName: strings.TrimPrefix(name, "/"), ImagePath: path})
	}
	return segments
}

// resolveImageToken finds the first token in line that names a
// supplied image. The returned name is the raw token as it appears in
// the line, for textual removal.
func resolveImageToken(line string, images map[string]string) (name, path string, ok bool) {
	if len(images) == 0 {
		return "", "", false
	}
	for _, part := range strings.Fields(line) {
		token := cleanToken(part)
		if !hasImageExtension(token) {
			continue
		}
		if p, found := images[token]; found {
			return token, p, true
		}
		if p, found := images[strings.TrimPrefix(token, "/")]; found {
			return token, p, true
		}
	}
	return "", "", false
}

// ReferencedImages returns every image filename mentioned in the
// steps text, keyed both with and without a leading slash so callers
// can match either form.
func ReferencedImages(steps string) map[string]bool {
	referenced := make(map[string]bool)
	if steps == "" {
		return referenced
	}
	for _, line := range strings.Split(steps, "\n") {
		for _, part := range strings.Fields(line) {
			token := cleanToken(part)
			if !hasImageExtension(token) {
				continue
			}
			referenced[token] = true
			referenced[strings.TrimPrefix(token, "/")] = true
		}
	}
	return referenced
}
