// Package fetch pulls job descriptions from the web and reduces their HTML
// to the plain text the analyzer consumes.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-matcher/internal/ingestion"
)

const (
	requestTimeout = 30 * time.Second
	userAgent      = "Mozilla/5.0 (compatible; ResumeMatcher/1.0)"
)

// Error wraps a fetch failure with the URL it happened on.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Document fetches a job posting URL and returns its cleaned text: the
// posting body located by board-specific selectors, with application forms
// and page chrome stripped, normalized for line-oriented analysis.
func Document(ctx context.Context, urlStr string) (string, error) {
	html, err := fetchHTML(ctx, urlStr)
	if err != nil {
		return "", err
	}

	board := detectBoard(urlStr)
	text, err := extractText(html, contentSelectors(board), noiseSelectors(board))
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}
	return text, nil
}

func fetchHTML(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	return string(body), nil
}

// board identifies the hosting applicant-tracking system, which determines
// where in the page the posting body lives.
type board int

const (
	boardGeneric board = iota
	boardGreenhouse
	boardLever
	boardWorkday
)

func detectBoard(urlStr string) board {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return boardGeneric
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "greenhouse.io"):
		return boardGreenhouse
	case strings.Contains(host, "lever.co"):
		return boardLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return boardWorkday
	default:
		return boardGeneric
	}
}

// contentSelectors locate the posting body, most specific first.
func contentSelectors(b board) []string {
	switch b {
	case boardGreenhouse:
		return []string{".job__description", "#content"}
	case boardLever:
		return []string{".posting-description", ".posting-page", ".content"}
	case boardWorkday:
		return []string{"[data-automation-id='jobDescription']", ".job-description"}
	default:
		return []string{".job-description", ".job-content", ".posting-content", "main", "article", "#content"}
	}
}

// noiseSelectors name elements that sit inside the posting body but carry no
// requirement text: application forms, disclosure sections, share widgets.
func noiseSelectors(b board) []string {
	noise := []string{
		"form",
		"#application-form",
		".application-form",
		".eeo-statement",
		".voluntary-disclosure",
		".social-share",
		".cookie-banner",
	}
	switch b {
	case boardGreenhouse:
		return append(noise, ".application--wrapper", ".voluntary-self-id")
	case boardLever:
		return append(noise, ".posting-apply")
	case boardWorkday:
		return append(noise, "[data-automation-id='applyButton']")
	default:
		return noise
	}
}

// extractText parses HTML, strips chrome and noise, and returns the
// normalized text of the first matching content region, falling back to the
// whole body.
func extractText(html string, content, noise []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar").Remove()
	doc.Find(strings.Join(noise, ", ")).Remove()

	region := doc.Find("body")
	for _, selector := range content {
		if sel := doc.Find(selector); sel.Length() > 0 {
			region = sel.First()
			break
		}
	}

	return ingestion.Normalize(region.Text()), nil
}
