package adapter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-deed-keeper/models"
)

var codeFence = regexp.MustCompile("(?i)^```(?:json)?\\s*|```$")

// parseDeedJSON decodes a model answer that should be a JSON object but may be
// wrapped in a code fence or surrounded by prose. Values that are not strings
// (numbers, booleans) are rendered with %v. Reports false when no object
// could be decoded.
func parseDeedJSON(text string) (models.DeedFields, bool) {
	s := strings.TrimSpace(text)
	s = strings.TrimSpace(codeFence.ReplaceAllString(s, ""))
	if s == "" {
		return models.DeedFields{}, false
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		block, found := firstObject(s)
		if !found {
			return models.DeedFields{}, false
		}
		if err = json.Unmarshal([]byte(block), &raw); err != nil {
			return models.DeedFields{}, false
		}
	}

	return models.DeedFields{
		NoHakmilik: looseString(raw["NoHakmilik"]),
		NoBangunan: looseString(raw["NoBangunan"]),
		NoTingkat:  looseString(raw["NoTingkat"]),
		NoPetak:    looseString(raw["NoPetak"]),
		Negeri:     looseString(raw["Negeri"]),
		Daerah:     looseString(raw["Daerah"]),
		Bandar:     looseString(raw["Bandar"]),
	}, true
}

// firstObject returns the first brace-balanced {...} block of s.
func firstObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func looseString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64, bool:
		return fmt.Sprintf("%v", t)
	default:
		return ""
	}
}

var (
	reHakmilik = regexp.MustCompile(`(?i)No\.?\s*Hakmilik\s*[:\-]\s*([^\n]+)`)
	reGeran    = regexp.MustCompile(`(?i)Geran\s+\d+`)
	reBangunan = regexp.MustCompile(`(?i)No\.?\s*Bangunan\s*[:\-]\s*([^\n]+)`)
	reTingkat  = regexp.MustCompile(`(?i)No\.?\s*Tingkat\s*[:\-]\s*([^\n]+)`)
	rePetak    = regexp.MustCompile(`(?i)No\.?\s*Petak\s*[:\-]\s*([^\n]+)`)
	reNegeri   = regexp.MustCompile(`(?i)Negeri\s*[:\-]\s*([^\n]+)`)
	reDaerah   = regexp.MustCompile(`(?i)Daerah\s*[:\-]\s*([^\n]+)`)
	reBandar   = regexp.MustCompile(`(?i)Bandar(?:/Pekan/Mukim)?\s*[:\-]\s*([^\n]+)`)
)

// fallbackExtract reads "Label: value" lines from free text.
func fallbackExtract(text string) models.DeedFields {
	hakmilik := pick(reHakmilik, text)
	if hakmilik == "" {
		hakmilik = pick(reGeran, text)
	}

	return models.DeedFields{
		NoHakmilik: hakmilik,
		NoBangunan: pick(reBangunan, text),
		NoTingkat:  pick(reTingkat, text),
		NoPetak:    pick(rePetak, text),
		Negeri:     pick(reNegeri, text),
		Daerah:     pick(reDaerah, text),
		Bandar:     pick(reBandar, text),
	}
}

// pick returns the first capture group of the first match, or the whole match
// when the pattern has no group.
func pick(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if len(m) > 1 && strings.TrimSpace(m[1]) != "" {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(m[0])
}
