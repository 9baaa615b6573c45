package source

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"trivia-research/internal/domain"
)

func TestExtractText_StripsBoilerplate(t *testing.T) {
	page := `<html>
	<head><style>body { color: red }</style><script>var x = 1;</script></head>
	<body>
	<nav>Home | About</nav>
	<header>Site Header</header>
	<main><p>The   actual
	article    text.</p></main>
	<aside>Related links</aside>
	<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractText(strings.NewReader(page))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if text != "The actual article text." {
		t.Errorf("text = %q", text)
	}
	for _, stripped := range []string{"var x", "color: red", "Home | About", "Site Header", "Related links", "Copyright"} {
		if strings.Contains(text, stripped) {
			t.Errorf("boilerplate leaked: %q", stripped)
		}
	}
}

func TestPageFetcherFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body>
			<article>
			<h1>Trivia History</h1>
			<p>Pub quizzes became popular in the United Kingdom during the 1970s,
			spreading to bars and taverns across the country as a weekly fixture.</p>
			<p>The format crossed the Atlantic in the following decades and remains
			a staple of neighborhood bars.</p>
			</article>
		</body></html>`)
	}))
	defer srv.Close()

	f := NewPageFetcher("test-agent/1.0", 5*time.Second, 5000, testLogger())
	text, err := f.Fetch(context.Background(), srv.URL, 5000)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	// Content survives whichever extraction path handled the page.
	if !strings.Contains(text, "Pub quizzes became popular") {
		t.Errorf("content missing from %q", text)
	}
}

func TestPageFetcherFetch_CharBudget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body><p>"+strings.Repeat("word ", 500)+"</p></body></html>")
	}))
	defer srv.Close()

	f := NewPageFetcher("ua", 5*time.Second, 5000, testLogger())
	text, err := f.Fetch(context.Background(), srv.URL, 100)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if utf8.RuneCountInString(text) > 100 {
		t.Errorf("text = %d runes, want <= 100", utf8.RuneCountInString(text))
	}
}

func TestPageFetcherFetch_DefaultBudget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body><p>"+strings.Repeat("word ", 500)+"</p></body></html>")
	}))
	defer srv.Close()

	// Zero budget falls back to the fetcher's configured default.
	f := NewPageFetcher("ua", 5*time.Second, 80, testLogger())
	text, err := f.Fetch(context.Background(), srv.URL, 0)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if utf8.RuneCountInString(text) > 80 {
		t.Errorf("text = %d runes, want <= 80", utf8.RuneCountInString(text))
	}
}

func TestPageFetcherFetch_InvalidScheme(t *testing.T) {
	f := NewPageFetcher("ua", 5*time.Second, 5000, testLogger())

	for _, raw := range []string{"ftp://example.com/file", "file:///etc/passwd", "not a url at all ://"} {
		_, err := f.Fetch(context.Background(), raw, 5000)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Fetch(%q): expected ErrInvalidInput, got %v", raw, err)
		}
	}
}

func TestPageFetcherFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewPageFetcher("ua", 5*time.Second, 5000, testLogger())
	_, err := f.Fetch(context.Background(), srv.URL, 5000)
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := collapseWhitespace("  a \n\t b  c  "); got != "a b c" {
		t.Errorf("got %q", got)
	}
	if got := collapseWhitespace("\n\t "); got != "" {
		t.Errorf("got %q", got)
	}
}
