package feed

import "testing"

func TestDiscoverFeedLink_ResolvesRelativeHref(t *testing.T) {
	tests := []struct {
		name string
		href string
		base string
		want string
	}{
		{
			name: "root-relative",
			href: "/feed",
			base: "https://example.com/blog/post",
			want: "https://example.com/feed",
		},
		{
			name: "path-relative",
			href: "feed.xml",
			base: "https://example.com/blog/post",
			want: "https://example.com/blog/feed.xml",
		},
		{
			name: "absolute",
			href: "https://feeds.example.net/main.xml",
			base: "https://example.com/",
			want: "https://feeds.example.net/main.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<html><head><link rel="alternate" type="application/rss+xml" href="` + tt.href + `"></head><body></body></html>`

			got, ok := DiscoverFeedLink(html, tt.base)

			if !ok {
				t.Fatal("DiscoverFeedLink found no link")
			}
			if got != tt.want {
				t.Errorf("DiscoverFeedLink = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscoverFeedLink_AcceptsRelFeedAndAtomType(t *testing.T) {
	html := `<html><head>
		<link rel="feed" type="application/atom+xml" href="/atom.xml">
	</head><body></body></html>`

	got, ok := DiscoverFeedLink(html, "https://example.com/")

	if !ok || got != "https://example.com/atom.xml" {
		t.Errorf("DiscoverFeedLink = %q, %v; want the atom link", got, ok)
	}
}

func TestDiscoverFeedLink_FirstMatchWins(t *testing.T) {
	html := `<html><head>
		<link rel="alternate" type="application/rss+xml" href="/primary.xml">
		<link rel="alternate" type="application/rss+xml" href="/secondary.xml">
	</head><body></body></html>`

	got, ok := DiscoverFeedLink(html, "https://example.com/")

	if !ok || got != "https://example.com/primary.xml" {
		t.Errorf("DiscoverFeedLink = %q, %v; want the first link in document order", got, ok)
	}
}

func TestDiscoverFeedLink_IgnoresNonFeedLinks(t *testing.T) {
	html := `<html><head>
		<link rel="stylesheet" type="text/css" href="/style.css">
		<link rel="alternate" type="text/html" href="/mobile">
		<link rel="icon" href="/favicon.ico">
	</head><body></body></html>`

	if _, ok := DiscoverFeedLink(html, "https://example.com/"); ok {
		t.Error("DiscoverFeedLink should not match stylesheet, html alternate, or icon links")
	}
}

func TestDiscoverFeedLink_NoLinks(t *testing.T) {
	if _, ok := DiscoverFeedLink("<html><head></head><body>plain page</body></html>", "https://example.com/"); ok {
		t.Error("DiscoverFeedLink should report no match for a page without links")
	}
}
