package dataflows

import (
	"encoding/json"
	"testing"
)

func TestDailyRowToCandle(t *testing.T) {
	row := krxDailyRow{
		TradeDate: "2025/02/19",
		Open:      "57,800",
		High:      "58,400",
		Low:       "57,500",
		Close:     "58,000",
		Volume:    "12,345,678",
	}

	candle, err := row.toCandle()
	if err != nil {
		t.Fatalf("toCandle failed: %v", err)
	}
	if got := candle.Date.Format("2006-01-02"); got != "2025-02-19" {
		t.Errorf("date = %s, want 2025-02-19", got)
	}
	if candle.Close.String() != "58000" {
		t.Errorf("close = %s, want 58000", candle.Close)
	}
	if candle.Volume != 12345678 {
		t.Errorf("volume = %d, want 12345678", candle.Volume)
	}
}

func TestDailyRowSkipsHolidayRows(t *testing.T) {
	row := krxDailyRow{
		TradeDate: "2025/02/20",
		Open:      "-",
		High:      "-",
		Low:       "-",
		Close:     "-",
		Volume:    "0",
	}

	if _, err := row.toCandle(); err == nil {
		t.Fatal("expected error for dash-valued row")
	}
}

func TestMasterListResponseShape(t *testing.T) {
	body := []byte(`{"block1":[
		{"full_code":"KR7005930003","short_code":"005930","codeName":"삼성전자","marketName":"KOSPI"}
	]}`)

	var result krxListingResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(result.Block1) != 1 {
		t.Fatalf("got %d listings, want 1", len(result.Block1))
	}
	l := result.Block1[0]
	if l.ShortCode != "005930" || l.Name != "삼성전자" || l.FullCode != "KR7005930003" {
		t.Errorf("unexpected listing: %+v", l)
	}
}
