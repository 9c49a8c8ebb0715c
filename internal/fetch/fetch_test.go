package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `
<html><body>
	<nav>Jobs | About | Contact</nav>
	<div class="job-description">
		<h2>Senior Data Engineer</h2>
		<p>Requires Python and SQL. Experience with Airflow, Jan 2020 - Present.</p>
		<div class="eeo-statement">We are an equal opportunity employer.</div>
	</div>
	<form id="application-form">First name: Last name: Resume:</form>
	<footer>© Acme Corp</footer>
</body></html>`

func serve(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestDocument_ExtractsPostingBody(t *testing.T) {
	server := serve(t, postingHTML)

	text, err := Document(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Data Engineer")
	assert.Contains(t, text, "Requires Python and SQL")
	assert.Contains(t, text, "Jan 2020 - Present")
}

func TestDocument_StripsChromeAndNoise(t *testing.T) {
	server := serve(t, postingHTML)

	text, err := Document(context.Background(), server.URL)
	require.NoError(t, err)

	assert.NotContains(t, text, "Jobs | About")
	assert.NotContains(t, text, "First name")
	assert.NotContains(t, text, "equal opportunity")
	assert.NotContains(t, text, "© Acme Corp")
}

func TestDocument_FallsBackToBody(t *testing.T) {
	server := serve(t, `<html><body><p>Backend role. Go required.</p></body></html>`)

	text, err := Document(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend role. Go required.")
}

func TestDocument_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Document(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestDocument_InvalidURL(t *testing.T) {
	_, err := Document(context.Background(), "not-a-valid-url")
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestDetectBoard(t *testing.T) {
	tests := []struct {
		url      string
		expected board
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", boardGreenhouse},
		{"https://jobs.lever.co/acme/posting-id", boardLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/External", boardWorkday},
		{"https://careers.acme.example/jobs/123", boardGeneric},
		{"://broken", boardGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectBoard(tt.url))
		})
	}
}

func TestBoardSelectors(t *testing.T) {
	// Every board narrows content to its posting container and always strips
	// application forms.
	assert.Contains(t, contentSelectors(boardGreenhouse), ".job__description")
	assert.Contains(t, contentSelectors(boardLever), ".posting-description")
	assert.Contains(t, contentSelectors(boardWorkday), "[data-automation-id='jobDescription']")
	assert.Contains(t, contentSelectors(boardGeneric), ".job-description")

	for _, b := range []board{boardGeneric, boardGreenhouse, boardLever, boardWorkday} {
		assert.Contains(t, noiseSelectors(b), "form")
	}
}

func TestExtractText_PrefersSpecificSelector(t *testing.T) {
	html := `
	<html><body>
		<div class="sidebar">Related jobs</div>
		<div class="posting-description">Lever posting body.</div>
	</body></html>`

	text, err := extractText(html, contentSelectors(boardLever), noiseSelectors(boardLever))
	require.NoError(t, err)
	assert.Contains(t, text, "Lever posting body.")
	assert.NotContains(t, text, "Related jobs")
}
