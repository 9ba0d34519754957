package seo

// CountIssues counts the problems flagged on a normalized payload:
// missing title, missing description, at least one image without alt text
// (only checked when the page has images), and no internal links.
func CountIssues(d Data) int {
	issues := 0

	if d.Meta.Title == "" {
		issues++
	}
	if d.Meta.Description == "" {
		issues++
	}
	if len(d.Images) > 0 {
		for _, img := range d.Images {
			if img.Alt == "" {
				issues++
				break
			}
		}
	}
	if d.Links.Internal == 0 {
		issues++
	}

	return issues
}
