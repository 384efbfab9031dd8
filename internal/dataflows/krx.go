package dataflows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"tradelog/internal/config"
)

// Sentinel conditions reported by the KRX client. Both are terminal for
// a chart run; neither is retried.
var (
	ErrTickerNotFound = errors.New("ticker not found")
	ErrEmptyWindow    = errors.New("no price data in requested window")
)

const krxBaseURL = "http://data.krx.co.kr"

// KRXClient fetches the stock master list and daily OHLCV history from
// the KRX market data service.
type KRXClient struct {
	client *resty.Client
	cache  *CacheManager

	// master list fetched once per run
	listings []Listing
	byTicker map[string]Listing
}

// NewKRXClient creates a new KRX data client.
func NewKRXClient(cfg *config.Config) *KRXClient {
	cacheDir := filepath.Join(cfg.DataCacheDir, "krx")
	cache := NewCacheManager(cacheDir, 24*time.Hour, cfg.CacheEnabled)

	client := resty.New()
	client.SetBaseURL(krxBaseURL)
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0")
	client.SetHeader("Referer", krxBaseURL+"/contents/MDC/MDI/mdiLoader")

	return &KRXClient{
		client: client,
		cache:  cache,
	}
}

// krxListingResult is the master list response shape.
type krxListingResult struct {
	Block1 []Listing `json:"block1"`
}

// krxDailyRow carries the provider's field labels for one daily bar.
// The labels are mapped to the canonical Open/High/Low/Close/Volume set
// before any further processing.
type krxDailyRow struct {
	TradeDate string `json:"TRD_DD"`
	Open      string `json:"TDD_OPNPRC"`
	High      string `json:"TDD_HGPRC"`
	Low       string `json:"TDD_LWPRC"`
	Close     string `json:"TDD_CLSPRC"`
	Volume    string `json:"ACC_TRDVOL"`
}

type krxDailyResult struct {
	Output []krxDailyRow `json:"output"`
}

// MasterList returns the full KRX stock master list, fetched at most
// once per run and optionally served from the file cache across runs.
func (kc *KRXClient) MasterList(ctx context.Context) ([]Listing, error) {
	if kc.listings != nil {
		return kc.listings, nil
	}

	var cached []Listing
	if kc.cache.Get("krx", "master_list", "all", &cached) {
		kc.index(cached)
		return cached, nil
	}

	resp, err := kc.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"bld":        "dbms/COM/finder_stkisu",
			"mktsel":     "ALL",
			"searchText": "",
		}).
		Post("/comm/bldAttendant/getJSON.cmd")
	if err != nil {
		return nil, fmt.Errorf("fetch master list: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("master list: API error %d: %s", resp.StatusCode(), resp.String())
	}

	var result krxListingResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("parse master list: %w", err)
	}
	if len(result.Block1) == 0 {
		return nil, fmt.Errorf("master list: empty response")
	}

	kc.cache.Set("krx", "master_list", "all", result.Block1)
	kc.index(result.Block1)
	return kc.listings, nil
}

func (kc *KRXClient) index(listings []Listing) {
	kc.listings = listings
	kc.byTicker = make(map[string]Listing, len(listings))
	for _, l := range listings {
		kc.byTicker[l.ShortCode] = l
	}
}

func (kc *KRXClient) listing(ctx context.Context, ticker string) (Listing, error) {
	if _, err := kc.MasterList(ctx); err != nil {
		return Listing{}, err
	}
	l, ok := kc.byTicker[ticker]
	if !ok {
		return Listing{}, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
	}
	return l, nil
}

// TickerName returns the listed company name for a ticker.
func (kc *KRXClient) TickerName(ctx context.Context, ticker string) (string, error) {
	l, err := kc.listing(ctx, ticker)
	if err != nil {
		return "", err
	}
	return l.Name, nil
}

// DailyOHLCV fetches the adjusted daily OHLCV series for a ticker over
// the given date range, oldest bar first. Rows with unparsable price
// fields (market holidays, halted listings) are skipped.
func (kc *KRXClient) DailyOHLCV(ctx context.Context, ticker string, start, end time.Time) (Series, error) {
	l, err := kc.listing(ctx, ticker)
	if err != nil {
		return nil, err
	}

	resp, err := kc.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"bld":       "dbms/MDC/STAT/standard/MDCSTAT01701",
			"isuCd":     l.FullCode,
			"strtDd":    FormatCompactDate(start),
			"endDd":     FormatCompactDate(end),
			"adjStkPrc": "2", // adjusted prices
			"share":     "1",
			"money":     "1",
		}).
		Post("/comm/bldAttendant/getJSON.cmd")
	if err != nil {
		return nil, fmt.Errorf("fetch OHLCV for %s: %w", ticker, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("OHLCV %s: API error %d: %s", ticker, resp.StatusCode(), resp.String())
	}

	var result krxDailyResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("parse OHLCV for %s: %w", ticker, err)
	}

	series := make(Series, 0, len(result.Output))
	for _, row := range result.Output {
		candle, err := row.toCandle()
		if err != nil {
			continue
		}
		series = append(series, candle)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrEmptyWindow, ticker, FormatDateRange(start, end))
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series, nil
}

// toCandle renames the provider fields to the canonical column set.
func (row krxDailyRow) toCandle() (Candle, error) {
	date, err := ParseKRXDate(row.TradeDate)
	if err != nil {
		return Candle{}, err
	}
	open, err := ParseCommaDecimal(row.Open)
	if err != nil {
		return Candle{}, err
	}
	high, err := ParseCommaDecimal(row.High)
	if err != nil {
		return Candle{}, err
	}
	low, err := ParseCommaDecimal(row.Low)
	if err != nil {
		return Candle{}, err
	}
	closePrice, err := ParseCommaDecimal(row.Close)
	if err != nil {
		return Candle{}, err
	}
	volume, err := ParseCommaInt(row.Volume)
	if err != nil {
		return Candle{}, err
	}
	return Candle{
		Date:   date,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  closePrice,
		Volume: volume,
	}, nil
}
