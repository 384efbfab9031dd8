package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// ErrNoTranscript reports that no caption track exists for the requested
// language.
var ErrNoTranscript = errors.New("no transcript for requested language")

const watchBaseURL = "https://www.youtube.com"

// Snippet is one timed caption unit.
type Snippet struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Client fetches caption tracks from YouTube watch pages.
type Client struct {
	client *resty.Client
}

// NewClient creates a transcript client.
func NewClient() *Client {
	client := resty.New()
	client.SetBaseURL(watchBaseURL)
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0")
	client.SetHeader("Accept-Language", "ko,en;q=0.8")

	return &Client{client: client}
}

// playerResponse is the slice of the watch-page player data we need.
type playerResponse struct {
	Captions struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// timedText is the caption track XML document.
type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
		Body  string  `xml:",chardata"`
	} `xml:"text"`
}

// Fetch retrieves the caption track for a video restricted to the given
// language code, preferring a manually created track over an
// auto-generated one.
func (c *Client) Fetch(ctx context.Context, videoID, language string) ([]Snippet, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("v", videoID).
		Get("/watch")
	if err != nil {
		return nil, fmt.Errorf("fetch watch page for %s: %w", videoID, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("watch page %s: status %d", videoID, resp.StatusCode())
	}

	track, err := pickCaptionTrack(resp.Body(), language)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	trackResp, err := c.client.R().
		SetContext(ctx).
		Get(track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch caption track for %s: %w", videoID, err)
	}
	if trackResp.StatusCode() != 200 {
		return nil, fmt.Errorf("caption track %s: status %d", videoID, trackResp.StatusCode())
	}

	return parseTimedText(trackResp.Body())
}

// pickCaptionTrack locates the player response JSON embedded in the
// watch page and selects the caption track for the language.
func pickCaptionTrack(page []byte, language string) (captionTrack, error) {
	pr, err := extractPlayerResponse(page)
	if err != nil {
		return captionTrack{}, err
	}

	tracks := pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	var auto *captionTrack
	for i, track := range tracks {
		if track.LanguageCode != language {
			continue
		}
		if track.Kind != "asr" {
			return track, nil
		}
		if auto == nil {
			auto = &tracks[i]
		}
	}
	if auto != nil {
		return *auto, nil
	}
	return captionTrack{}, fmt.Errorf("%w: %s", ErrNoTranscript, language)
}

func extractPlayerResponse(page []byte) (*playerResponse, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse watch page: %w", err)
	}

	const marker = "ytInitialPlayerResponse = "
	var raw string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if idx := strings.Index(text, marker); idx >= 0 {
			raw = text[idx+len(marker):]
			return false
		}
		return true
	})
	if raw == "" {
		return nil, fmt.Errorf("player response not found in watch page")
	}

	// The decoder stops at the end of the JSON value, ignoring the
	// trailing script text.
	var pr playerResponse
	if err := json.NewDecoder(strings.NewReader(raw)).Decode(&pr); err != nil {
		return nil, fmt.Errorf("parse player response: %w", err)
	}
	return &pr, nil
}

func parseTimedText(body []byte) ([]Snippet, error) {
	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse caption track: %w", err)
	}

	snippets := make([]Snippet, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		text := strings.TrimSpace(html.UnescapeString(t.Body))
		if text == "" {
			continue
		}
		snippets = append(snippets, Snippet{
			Text:     text,
			Start:    t.Start,
			Duration: t.Dur,
		})
	}
	return snippets, nil
}
