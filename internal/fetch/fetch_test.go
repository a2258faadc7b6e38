package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Test</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "text/html", result.ContentType)
}

func TestURL_InvalidURL(t *testing.T) {
	for _, u := range []string{"not-a-valid-url", "ftp://example.com/job", "https://"} {
		_, err := URL(context.Background(), u, nil)
		require.Error(t, err, u)

		var fetchErr *Error
		assert.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, err.Error(), "invalid URL")
	}
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestURL_MaxBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.MaxBytes = 100
	result, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Len(t, result.HTML, 100)
}

func TestExtractMainText_WithMainElement(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<main>
				<h1>Main Content</h1>
				<p>This is the important text.</p>
			</main>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Main Content\nThis is the important text.", text)
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	html := `<html><body><div>Some   content
		here.</div></body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Some content\nhere.", text)
}

func TestExtractMainText_ListItemsStaySeparate(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="sidebar">Sidebar junk</div>
			<div class="job-description">
				<h2>Requirements</h2>
				<ul><li>Go</li><li>Docker</li><li>PostgreSQL</li></ul>
				<p>Remote<br>Full time</p>
			</div>
			<form>Apply now</form>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors(), "form")
	require.NoError(t, err)
	assert.Equal(t, "Requirements\nGo\nDocker\nPostgreSQL\nRemote\nFull time", text)
	assert.NotContains(t, text, "Sidebar junk")
}

func TestJobPostingSelectors(t *testing.T) {
	selectors := JobPostingSelectors()
	assert.Contains(t, selectors, ".job-description")
	assert.Contains(t, selectors, "#job-content")
	assert.Equal(t, "main", DefaultTextSelectors()[0])
}
