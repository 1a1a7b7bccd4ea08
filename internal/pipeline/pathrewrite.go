package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RelinkAssets rewrites relative image and link paths written against
// sourceDir so they still resolve from previewDir, where the HTML preview
// is saved. It returns htmlContent unchanged when either directory is
// empty or both are the same.
//
// Rewrites img[src] and a[href]. URLs, anchors, absolute paths and paths
// escaping sourceDir are left alone.
func RelinkAssets(htmlContent, sourceDir, previewDir string) (string, error) {
	if sourceDir == "" || previewDir == "" {
		return htmlContent, nil
	}

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	absPreview, err := filepath.Abs(previewDir)
	if err != nil {
		return "", err
	}
	if absSource == absPreview {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}
	relinkNode(doc, absSource, absPreview)
	return renderHTML(doc, isFragment)
}

// parseHTML parses a full document or a fragment. It reports which one it
// parsed so rendering does not add an <html><body> wrapper to fragments.
func parseHTML(content string) (*html.Node, bool, error) {
	lower := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder
	if !isFragment {
		if err := html.Render(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func relinkNode(n *html.Node, sourceDir, previewDir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			relinkAttr(n, "src", sourceDir, previewDir)
		case atom.A:
			relinkAttr(n, "href", sourceDir, previewDir)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		relinkNode(c, sourceDir, previewDir)
	}
}

func relinkAttr(n *html.Node, key, sourceDir, previewDir string) {
	for i, attr := range n.Attr {
		if attr.Key != key || !isRelativePath(attr.Val) {
			continue
		}

		// Keep ?query and #fragment out of path resolution.
		path, suffix := attr.Val, ""
		if cut := strings.IndexAny(path, "?#"); cut != -1 {
			path, suffix = path[:cut], path[cut:]
		}

		target := filepath.Join(sourceDir, filepath.FromSlash(path))
		if !isPathUnderDir(target, sourceDir) {
			continue
		}

		rel, err := filepath.Rel(previewDir, target)
		if err != nil {
			// Different volumes: no relative path exists.
			n.Attr[i].Val = pathToFileURL(target) + suffix
			continue
		}
		n.Attr[i].Val = filepath.ToSlash(rel) + suffix
	}
}

// isRelativePath reports whether path is a relative file reference.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	if u, err := url.Parse(path); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return false
	}
	return !filepath.IsAbs(path) && !strings.HasPrefix(path, "/")
}

// isPathUnderDir checks that absPath stays inside dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}

func pathToFileURL(absPath string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}
	return u.String()
}
