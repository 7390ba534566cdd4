package sqlite

import "realtime-checklist/internal/model"

type catalogItem struct {
	Category         string
	Title            string
	Description      string
	ActionRequired   string
	Priority         model.Priority
	Difficulty       model.Difficulty
	EstimatedMinutes int
}

// websiteAuditCatalog is seeded into every new website audit checklist, in sort order.
var websiteAuditCatalog = []catalogItem{
	{
		Category:         "Performance",
		Title:            "Analyze Core Web Vitals",
		Description:      "Measure LCP, INP and CLS on the main landing pages",
		ActionRequired:   "Run PageSpeed Insights and record the field data for each page",
		Priority:         model.PriorityCritical,
		Difficulty:       model.DifficultyMedium,
		EstimatedMinutes: 30,
	},
	{
		Category:         "Performance",
		Title:            "Optimize images",
		Description:      "Serve modern formats with explicit dimensions",
		ActionRequired:   "Convert hero and gallery images to WebP/AVIF and add width/height attributes",
		Priority:         model.PriorityHigh,
		Difficulty:       model.DifficultyMedium,
		EstimatedMinutes: 45,
	},
	{
		Category:         "Performance",
		Title:            "Minify CSS and JS",
		Description:      "Ship minified static assets",
		ActionRequired:   "Enable minification in the build pipeline and verify the bundle sizes",
		Priority:         model.PriorityHigh,
		Difficulty:       model.DifficultyEasy,
		EstimatedMinutes: 15,
	},
	{
		Category:         "Performance",
		Title:            "Enable Gzip/Brotli compression",
		Description:      "Compress text responses at the edge",
		ActionRequired:   "Turn on Brotli with a Gzip fallback for HTML, CSS, JS and JSON",
		Priority:         model.PriorityMedium,
		Difficulty:       model.DifficultyEasy,
		EstimatedMinutes: 20,
	},
	{
		Category:         "SEO",
		Title:            "Optimize meta tags",
		Description:      "Title, description and Open Graph tags for every page",
		ActionRequired:   "Write unique titles and descriptions and add og:image for shared pages",
		Priority:         model.PriorityCritical,
		Difficulty:       model.DifficultyEasy,
		EstimatedMinutes: 40,
	},
	{
		Category:         "SEO",
		Title:            "Add schema markup",
		Description:      "Structured data for the organization and its services",
		ActionRequired:   "Add JSON-LD for Organization, Service and FAQ and validate it",
		Priority:         model.PriorityHigh,
		Difficulty:       model.DifficultyMedium,
		EstimatedMinutes: 75,
	},
	{
		Category:         "SEO",
		Title:            "Publish sitemap and robots.txt",
		Description:      "Let crawlers discover every public page",
		ActionRequired:   "Generate sitemap.xml, reference it from robots.txt and submit it to Search Console",
		Priority:         model.PriorityHigh,
		Difficulty:       model.DifficultyEasy,
		EstimatedMinutes: 25,
	},
	{
		Category:         "Security",
		Title:            "Enforce HTTPS and HSTS",
		Description:      "All traffic over TLS",
		ActionRequired:   "Redirect HTTP to HTTPS and send a Strict-Transport-Security header",
		Priority:         model.PriorityCritical,
		Difficulty:       model.DifficultyEasy,
		EstimatedMinutes: 20,
	},
	{
		Category:         "Security",
		Title:            "Configure security headers",
		Description:      "CSP, X-Frame-Options and Referrer-Policy",
		ActionRequired:   "Add the headers at the edge and check them with securityheaders.com",
		Priority:         model.PriorityHigh,
		Difficulty:       model.DifficultyMedium,
		EstimatedMinutes: 30,
	},
	{
		Category:         "UX",
		Title:            "Audit mobile responsiveness",
		Description:      "Layouts and tap targets on small screens",
		ActionRequired:   "Test the main flows on 360px and 768px viewports and fix overflow issues",
		Priority:         model.PriorityHigh,
		Difficulty:       model.DifficultyMedium,
		EstimatedMinutes: 45,
	},
	{
		Category:         "UX",
		Title:            "Review accessibility (WCAG 2.1 AA)",
		Description:      "Contrast, keyboard navigation and labels",
		ActionRequired:   "Run an axe scan and fix contrast, focus order and missing alt text",
		Priority:         model.PriorityMedium,
		Difficulty:       model.DifficultyHard,
		EstimatedMinutes: 60,
	},
}

func catalogMinutes(catalog []catalogItem) int {
	total := 0
	for _, c := range catalog {
		total += c.EstimatedMinutes
	}
	return total
}
