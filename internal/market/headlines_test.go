package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>%s</title>
%s
</channel></rss>`

func feedItem(title, link, pubDate string) string {
	return fmt.Sprintf("<item><title>%s</title><link>%s</link><pubDate>%s</pubDate></item>", title, link, pubDate)
}

func TestHeadlinesFetch(t *testing.T) {
	feed := fmt.Sprintf(feedTemplate, "Test Wire",
		feedItem("Older story", "https://example.com/old", "Mon, 02 Jun 2025 08:00:00 GMT")+
			feedItem("Newer story", "https://example.com/new", "Tue, 03 Jun 2025 08:00:00 GMT"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, feed)
	}))
	defer srv.Close()

	h := NewHeadlinesWithSources([]HeadlineSource{{Name: "Test Wire", RSSURL: srv.URL}})
	headlines := h.Fetch(context.Background(), 10)

	if len(headlines) != 2 {
		t.Fatalf("headlines = %d, want 2", len(headlines))
	}
	// Newest first.
	if headlines[0].Title != "Newer story" || headlines[1].Title != "Older story" {
		t.Errorf("order = [%s, %s]", headlines[0].Title, headlines[1].Title)
	}
	if headlines[0].Source != "Test Wire" {
		t.Errorf("source = %q", headlines[0].Source)
	}
	if headlines[0].URL != "https://example.com/new" {
		t.Errorf("url = %q", headlines[0].URL)
	}
}

func TestHeadlinesSkipsFailedSources(t *testing.T) {
	good := fmt.Sprintf(feedTemplate, "Good",
		feedItem("Only story", "https://example.com/a", "Mon, 02 Jun 2025 08:00:00 GMT"))

	goodSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, good)
	}))
	defer goodSrv.Close()
	badSrv := httptest.NewServer(http.NotFoundHandler())
	defer badSrv.Close()

	h := NewHeadlinesWithSources([]HeadlineSource{
		{Name: "Bad", RSSURL: badSrv.URL},
		{Name: "Good", RSSURL: goodSrv.URL},
	})
	headlines := h.Fetch(context.Background(), 10)

	if len(headlines) != 1 || headlines[0].Source != "Good" {
		t.Errorf("headlines = %+v, want the good source only", headlines)
	}
}

func TestHeadlinesLimit(t *testing.T) {
	items := ""
	for i := 0; i < 5; i++ {
		items += feedItem(fmt.Sprintf("Story %d", i), "https://example.com", "Mon, 02 Jun 2025 08:00:00 GMT")
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, fmt.Sprintf(feedTemplate, "Wire", items))
	}))
	defer srv.Close()

	h := NewHeadlinesWithSources([]HeadlineSource{{Name: "Wire", RSSURL: srv.URL}})
	if got := h.Fetch(context.Background(), 3); len(got) != 3 {
		t.Errorf("headlines = %d, want capped at 3", len(got))
	}
}

func TestHeadlinesCached(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, fmt.Sprintf(feedTemplate, "Wire",
			feedItem("Story", "https://example.com", "Mon, 02 Jun 2025 08:00:00 GMT")))
	}))
	defer srv.Close()

	h := NewHeadlinesWithSources([]HeadlineSource{{Name: "Wire", RSSURL: srv.URL}})
	h.Fetch(context.Background(), 10)
	h.Fetch(context.Background(), 10)

	if calls != 1 {
		t.Errorf("source fetched %d times, want 1 (cached)", calls)
	}
}
