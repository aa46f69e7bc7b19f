package nehody

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"golang.org/x/net/html"
)

// userAgent is sent with every upstream request; the listing server rejects
// clients without a browser-like agent.
const userAgent = "Chrome/70.0.3538.77"

// defaultHTTPClient is shared across fetchers.
var defaultHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
}

// fetcher downloads the upstream listing page and archives. It is the only
// component that touches the network; parsing and caching never do.
type fetcher struct {
	client *http.Client
	url    string
	logger *slog.Logger
}

// links fetches the listing page and returns the href target of every
// anchor, in document order. No filtering happens here; the version
// selector decides which links matter.
func (f *fetcher) links() ([]string, error) {
	body, err := f.get(f.url)
	if err != nil {
		return nil, fmt.Errorf("fetching listing %s: %w", f.url, err)
	}
	defer body.Close()

	doc, err := html.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing listing %s: %w", f.url, err)
	}

	var hrefs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					hrefs = append(hrefs, attr.Val)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return hrefs, nil
}

// download saves one archive into dir under its base filename and returns
// the local path.
func (f *fetcher) download(name, dir string) (string, error) {
	src, err := url.JoinPath(f.url, name)
	if err != nil {
		return "", fmt.Errorf("building archive URL for %s: %w", name, err)
	}
	dst := filepath.Join(dir, path.Base(name))

	body, err := f.get(src)
	if err != nil {
		return "", fmt.Errorf("fetching archive %s: %w", src, err)
	}
	defer body.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dst, err)
	}
	success := false
	defer func() {
		out.Close()
		if !success {
			os.Remove(dst) // best-effort cleanup of a partial file
		}
	}()

	if _, err := io.Copy(out, body); err != nil {
		return "", fmt.Errorf("writing %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", dst, err)
	}
	success = true

	f.logger.Info("archive downloaded", "name", path.Base(name))
	return dst, nil
}

// get issues a GET with the fixed user agent and returns the body on 200.
func (f *fetcher) get(target string) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
