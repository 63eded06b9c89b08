package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleBody = `Go is a statically typed, compiled programming language designed at Google.
It is syntactically similar to C, but with memory safety, garbage collection,
structural typing, and CSP-style concurrency.`

func TestExtractFromArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Chrome")
		w.Write([]byte(`<html><head><title>t</title><style>.x{color:red}</style></head>
			<body>
			<nav>Home | About</nav>
			<script>var tracking = true;</script>
			<article>` + articleBody + `</article>
			<footer>Copyright</footer>
			</body></html>`))
	}))
	defer srv.Close()

	content, err := NewExtractor().Extract(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, content, "statically typed")
	assert.NotContains(t, content, "tracking")
	assert.NotContains(t, content, "Home | About")
	assert.NotContains(t, content, "Copyright")
	assert.NotContains(t, content, "color:red")
}

func TestExtractFallsBackToBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><div>" + articleBody + "</div></body></html>"))
	}))
	defer srv.Close()

	content, err := NewExtractor().Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, content, "garbage collection")
}

func TestExtractRejectsShortContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><article>too short</article></body></html>"))
	}))
	defer srv.Close()

	_, err := NewExtractor().Extract(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meaningful content")
}

func TestExtractNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewExtractor().Extract(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestCleanText(t *testing.T) {
	got := cleanText("  hello    world \n\n\n  next   line  ")
	assert.Equal(t, "hello world\nnext line", got)
	assert.False(t, strings.HasSuffix(got, " "))
}
