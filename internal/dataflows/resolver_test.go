package dataflows

import (
	"context"
	"errors"
	"testing"
)

type fakeMasterLister struct {
	listings []Listing
	calls    int
}

func (f *fakeMasterLister) MasterList(ctx context.Context) ([]Listing, error) {
	f.calls++
	return f.listings, nil
}

func testListings() []Listing {
	return []Listing{
		{FullCode: "KR7005930003", ShortCode: "005930", Name: "삼성전자", Market: "KOSPI"},
		{FullCode: "KR7000660001", ShortCode: "000660", Name: "SK하이닉스", Market: "KOSPI"},
	}
}

func TestResolveByName(t *testing.T) {
	r := NewTickerResolver(&fakeMasterLister{listings: testListings()})

	l, err := r.Resolve(context.Background(), "삼성전자")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if l.ShortCode != "005930" {
		t.Errorf("got ticker %s, want 005930", l.ShortCode)
	}
}

func TestResolveTickerPassthrough(t *testing.T) {
	r := NewTickerResolver(&fakeMasterLister{listings: testListings()})

	l, err := r.Resolve(context.Background(), "000660")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if l.ShortCode != "000660" {
		t.Errorf("got ticker %s, want 000660", l.ShortCode)
	}
	if l.Name != "SK하이닉스" {
		t.Errorf("got name %s, want SK하이닉스", l.Name)
	}
}

func TestResolveUnknownName(t *testing.T) {
	r := NewTickerResolver(&fakeMasterLister{listings: testListings()})

	_, err := r.Resolve(context.Background(), "없는회사")
	if !errors.Is(err, ErrTickerNotFound) {
		t.Fatalf("got %v, want ErrTickerNotFound", err)
	}
}

func TestResolveFetchesMasterListOnce(t *testing.T) {
	source := &fakeMasterLister{listings: testListings()}
	r := NewTickerResolver(source)

	ctx := context.Background()
	if _, err := r.Resolve(ctx, "삼성전자"); err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}
	if _, err := r.Resolve(ctx, "000660"); err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if source.calls != 1 {
		t.Errorf("master list fetched %d times, want 1", source.calls)
	}
}
