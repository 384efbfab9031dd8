package transcript

import (
	"errors"
	"testing"
)

const watchPageFixture = `<html><head>
<script>var config = {};</script>
<script>var ytInitialPlayerResponse = {"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[
{"baseUrl":"https://example.test/ko-auto","languageCode":"ko","kind":"asr"},
{"baseUrl":"https://example.test/ko-manual","languageCode":"ko"},
{"baseUrl":"https://example.test/en","languageCode":"en"}
]}}};var ytcfg = {};</script>
</head><body></body></html>`

func TestPickCaptionTrackPrefersManual(t *testing.T) {
	track, err := pickCaptionTrack([]byte(watchPageFixture), "ko")
	if err != nil {
		t.Fatalf("pickCaptionTrack failed: %v", err)
	}
	if track.BaseURL != "https://example.test/ko-manual" {
		t.Errorf("got %q, want the manual ko track", track.BaseURL)
	}
}

func TestPickCaptionTrackFallsBackToAuto(t *testing.T) {
	page := `<html><script>var ytInitialPlayerResponse = {"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[
{"baseUrl":"https://example.test/ko-auto","languageCode":"ko","kind":"asr"}
]}}};</script></html>`

	track, err := pickCaptionTrack([]byte(page), "ko")
	if err != nil {
		t.Fatalf("pickCaptionTrack failed: %v", err)
	}
	if track.BaseURL != "https://example.test/ko-auto" {
		t.Errorf("got %q, want the auto ko track", track.BaseURL)
	}
}

func TestPickCaptionTrackMissingLanguage(t *testing.T) {
	_, err := pickCaptionTrack([]byte(watchPageFixture), "ja")
	if !errors.Is(err, ErrNoTranscript) {
		t.Fatalf("got %v, want ErrNoTranscript", err)
	}
}

func TestPickCaptionTrackNoPlayerResponse(t *testing.T) {
	if _, err := pickCaptionTrack([]byte("<html><body>nope</body></html>"), "ko"); err == nil {
		t.Fatal("expected error for page without player response")
	}
}

func TestParseTimedText(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.5" dur="2.1">안녕하세요</text>
  <text start="3.0" dur="1.4">오늘의 &#39;시황&#39; 입니다</text>
  <text start="5.0" dur="0.8">  </text>
</transcript>`)

	snippets, err := parseTimedText(body)
	if err != nil {
		t.Fatalf("parseTimedText failed: %v", err)
	}
	if len(snippets) != 2 {
		t.Fatalf("got %d snippets, want 2 (blank snippet dropped)", len(snippets))
	}
	if snippets[0].Text != "안녕하세요" || snippets[0].Start != 0.5 || snippets[0].Duration != 2.1 {
		t.Errorf("unexpected first snippet: %+v", snippets[0])
	}
	if snippets[1].Text != "오늘의 '시황' 입니다" {
		t.Errorf("entities not unescaped: %q", snippets[1].Text)
	}
}
