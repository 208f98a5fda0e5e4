package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultAccentFrom  = "#8B5CF6"
	DefaultAccentTo    = "#6366F1"
	DefaultAccentColor = DefaultAccentTo
)

var hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Gradient is a two-stop 135-degree linear gradient.
type Gradient struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (g Gradient) CSS() string {
	return fmt.Sprintf("linear-gradient(135deg, %s, %s)", g.From, g.To)
}

// NormalizeHex accepts "#" followed by 3 or 6 hex digits; anything else
// (including missing "#") comes back empty.
func NormalizeHex(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !hexColorRE.MatchString(trimmed) {
		return ""
	}
	return trimmed
}

// HexToRGBA renders a hex color as an rgba() string with the given alpha,
// clamped to [0,1] and printed with 2-decimal precision. Empty on malformed
// input.
func HexToRGBA(color string, alpha float64) string {
	normalized := strings.TrimSpace(color)
	if normalized == "" {
		return ""
	}
	normalized = strings.TrimPrefix(normalized, "#")
	if len(normalized) == 3 {
		var b strings.Builder
		for _, ch := range normalized {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		normalized = b.String()
	}
	if len(normalized) != 6 {
		return ""
	}
	red, err1 := strconv.ParseUint(normalized[0:2], 16, 8)
	green, err2 := strconv.ParseUint(normalized[2:4], 16, 8)
	blue, err3 := strconv.ParseUint(normalized[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	clamped := alpha
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 1 {
		clamped = 1
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", red, green, blue, strconv.FormatFloat(clamped, 'f', 2, 64))
}

// BuildGradient derives a card gradient from optional accent colors. Both
// valid: direct two-stop gradient. One valid: translucent self-gradient from
// 12% to 45% alpha of that color. Neither: the default accent pair.
func BuildGradient(accentFrom, accentTo string) Gradient {
	from := NormalizeHex(accentFrom)
	to := NormalizeHex(accentTo)

	if from != "" && to != "" {
		return Gradient{From: from, To: to}
	}
	if single := from; single != "" {
		return selfGradient(single)
	}
	if single := to; single != "" {
		return selfGradient(single)
	}
	return Gradient{From: DefaultAccentFrom, To: DefaultAccentTo}
}

func selfGradient(color string) Gradient {
	start := HexToRGBA(color, 0.12)
	if start == "" {
		start = color
	}
	end := HexToRGBA(color, 0.45)
	if end == "" {
		end = color
	}
	return Gradient{From: start, To: end}
}

// AccentColor picks the solid accent for a card: to, then from, then default.
func AccentColor(accentFrom, accentTo string) string {
	if to := NormalizeHex(accentTo); to != "" {
		return to
	}
	if from := NormalizeHex(accentFrom); from != "" {
		return from
	}
	return DefaultAccentColor
}
