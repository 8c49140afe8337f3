package intake

import (
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html lang="en">
<head><title>Proposal</title><script>track()</script></head>
<body>
  <nav><a href="/">Home</a><a href="/about">About</a></nav>
  <main>
    <h1>Executive Summary</h1>
    <p>This proposal outlines our <strong>approach</strong>.</p>
    <ul><li>Discovery</li><li>Design</li></ul>
  </main>
  <footer>© 2026 Example Corp</footer>
</body>
</html>`

func TestMarkdownExtractsMainContent(t *testing.T) {
	md, err := Markdown(samplePage)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}

	if !strings.Contains(md, "# Executive Summary") {
		t.Errorf("heading missing from markdown:\n%s", md)
	}
	if !strings.Contains(md, "**approach**") {
		t.Errorf("bold text not normalized to ** markers:\n%s", md)
	}
	if !strings.Contains(md, "- Discovery") {
		t.Errorf("list items missing from markdown:\n%s", md)
	}
	for _, noise := range []string{"Home", "About", "Example Corp", "track()"} {
		if strings.Contains(md, noise) {
			t.Errorf("noise %q leaked into markdown:\n%s", noise, md)
		}
	}
}

func TestMarkdownBodyFallback(t *testing.T) {
	md, err := Markdown(`<html><body><p>just a body</p></body></html>`)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(md, "just a body") {
		t.Errorf("body content missing:\n%s", md)
	}
}
