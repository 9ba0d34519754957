package seo

import (
	"encoding/json"
	"strings"
)

// Normalize converts a raw scan payload into the canonical Data shape. It
// never fails: malformed JSON, a non-object payload, or fields of unexpected
// types all degrade to zero values for the affected fields. Normalizing the
// marshaled form of an already-normalized value yields the same value.
func Normalize(raw []byte) Data {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return zeroData()
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return zeroData()
	}

	// Some extension versions nest the real payload under a "data" key.
	if inner, ok := obj["data"].(map[string]any); ok {
		obj = inner
	}

	d := Data{
		Images:   imageSlice(obj["images"]),
		Links:    normalizeLinks(obj["links"]),
		Headings: headingSlice(obj["headings"]),
		Emails:   stringSlice(obj["emails"]),
	}
	d.Meta.Keywords = []string{}

	if meta, ok := obj["meta"].(map[string]any); ok {
		d.Meta = Meta{
			Title:       asString(meta["title"]),
			Description: asString(meta["description"]),
			Keywords:    keywordList(meta["keywords"]),
			OGTags:      stringMap(meta["ogTags"]),
			TwitterTags: stringMap(meta["twitterTags"]),
		}
	}

	if content, ok := obj["content"].(map[string]any); ok {
		d.Content = Content{
			Paragraphs: stringSlice(content["paragraphs"]),
			Keywords:   keywordCountSlice(content["keywords"]),
			Emphasized: stringSlice(content["emphasized"]),
			Strong:     stringSlice(content["strong"]),
		}
	}

	if basic, ok := obj["basic"].(map[string]any); ok {
		d.Basic = Basic{
			Charset:  asString(basic["charset"]),
			Language: asString(basic["language"]),
		}
	}

	return d
}

// zeroData is the canonical empty form of a payload that carries no usable
// object. Meta.Keywords stays non-nil so the empty value round-trips through
// marshal+Normalize unchanged.
func zeroData() Data {
	d := Data{}
	d.Meta.Keywords = []string{}
	return d
}

// keywordList accepts either a comma-separated string or an array of strings.
// The result is never nil and never contains empty entries.
func keywordList(v any) []string {
	out := []string{}
	switch kw := v.(type) {
	case string:
		for _, part := range strings.Split(kw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	case []any:
		for _, item := range kw {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// normalizeLinks resolves the two historical link shapes: an object with an
// explicit numeric total, or internal/external given as arrays or numbers.
func normalizeLinks(v any) Links {
	obj, ok := v.(map[string]any)
	if !ok {
		return Links{}
	}

	if total, ok := asInt(obj["total"]); ok {
		return Links{
			Total:    total,
			Internal: countOf(obj["internal"]),
			External: countOf(obj["external"]),
		}
	}

	l := Links{
		Internal: countOf(obj["internal"]),
		External: countOf(obj["external"]),
	}
	l.Total = l.Internal + l.External
	return l
}

// countOf reads a link-count field that may be an array of link records or a
// plain number. Anything else counts as 0.
func countOf(v any) int {
	switch val := v.(type) {
	case []any:
		return len(val)
	default:
		if n, ok := asInt(v); ok {
			return n
		}
		return 0
	}
}

func imageSlice(v any) []Image {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	out := make([]Image, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		img := Image{
			Src: asString(obj["src"]),
			Alt: asString(obj["alt"]),
		}
		img.Width, _ = asInt(obj["width"])
		img.Height, _ = asInt(obj["height"])
		out = append(out, img)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func headingSlice(v any) []Heading {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	out := make([]Heading, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		h := Heading{Text: asString(obj["text"])}
		h.Level, _ = asInt(obj["level"])
		out = append(out, h)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func keywordCountSlice(v any) []KeywordCount {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	out := make([]KeywordCount, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		kc := KeywordCount{Word: asString(obj["word"])}
		kc.Count, _ = asInt(obj["count"])
		out = append(out, kc)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func stringMap(v any) map[string]string {
	obj, ok := v.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil
	}
	out := make(map[string]string, len(obj))
	for k, val := range obj {
		if s, ok := val.(string); ok {
			out[k] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
