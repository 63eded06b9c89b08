// Package content extracts readable article text from web pages so users
// can feed a URL into podcast generation instead of pasting text.
package content

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Sites gate on common bot fingerprints, so requests carry a plain
// browser user agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// contentSelectors are probed in order until one matches; body text is
// the last resort.
var contentSelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	"#main-content",
	".main-content",
	".post-content",
	".article-content",
	".entry-content",
	"#content",
	".content",
}

type Extractor struct {
	client *http.Client
}

func NewExtractor() *Extractor {
	return &Extractor{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

var (
	spaceRun   = regexp.MustCompile(`[^\S\r\n]+`)
	newlineRun = regexp.MustCompile(`\n\s*`)
)

// Extract fetches the page and returns its main text content. It fails
// when the result is too short to be a usable generation prompt.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.google.com/")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	doc.Find("script, style, nav, header, footer, iframe, noscript, .ads, #ads, .advertisement").Remove()

	var content string
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.Text()
			break
		}
	}
	if content == "" {
		content = doc.Find("body").Text()
	}

	content = cleanText(content)

	if len(content) < 100 {
		return "", fmt.Errorf("could not extract meaningful content from the webpage")
	}

	return content, nil
}

func cleanText(s string) string {
	s = spaceRun.ReplaceAllString(s, " ")
	s = newlineRun.ReplaceAllString(s, "\n")
	s = strings.ReplaceAll(s, " \n", "\n")
	return strings.TrimSpace(s)
}
