package seo

// Score computes the 0-100 SEO score for a normalized payload. Each signal
// contributes a fixed weight when present and non-empty; the sum is capped
// at 100.
func Score(d Data) int {
	score := 0

	if d.Meta.Title != "" {
		score += 15
	}
	if d.Meta.Description != "" {
		score += 15
	}
	if len(d.Meta.Keywords) > 0 {
		score += 10
	}
	if len(d.Meta.OGTags) > 0 {
		score += 10
	}
	if len(d.Meta.TwitterTags) > 0 {
		score += 10
	}
	if len(d.Content.Paragraphs) > 0 {
		score += 10
	}
	if len(d.Content.Keywords) > 0 {
		score += 10
	}
	if len(d.Content.Emphasized) > 0 {
		score += 5
	}
	if len(d.Content.Strong) > 0 {
		score += 5
	}
	if d.Basic.Charset != "" {
		score += 2
	}
	if d.Basic.Language != "" {
		score += 2
	}
	if len(d.Images) > 0 {
		score += 3
	}
	if d.Links.Internal > 0 {
		score += 2
	}
	if d.Links.External > 0 {
		score += 1
	}

	if score > 100 {
		score = 100
	}
	return score
}
