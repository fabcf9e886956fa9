package service

import (
	"testing"
	"time"
)

func TestClampBet(t *testing.T) {
	cases := []struct {
		in   int64
		want int64
	}{
		{5, 10},
		{10, 10},
		{500, 500},
		{1000, 1000},
		{5000, 1000},
		{-100, 10},
	}
	for _, c := range cases {
		if got := ClampBet(c.in); got != c.want {
			t.Fatalf("ClampBet(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestValidatePredictionDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

	cases := []struct {
		name   string
		date   time.Time
		wantOk bool
	}{
		{"明天", now.AddDate(0, 0, 1), true},
		{"今天", now, false},
		{"今天更晚的时刻", now.Add(2 * time.Hour), false},
		{"昨天", now.AddDate(0, 0, -1), false},
		{"一年内最后一天", now.AddDate(0, 0, 365), true},
		{"超过一年", now.AddDate(0, 0, 366), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidatePredictionDate(c.date, now)
			if c.wantOk && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !c.wantOk && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestProphetAccuracy(t *testing.T) {
	// 没有预言时命中率为 0，不能除零
	if got := ProphetAccuracy(0, 0); got != 0 {
		t.Fatalf("ProphetAccuracy(0, 0) = %v, want 0", got)
	}
	if got := ProphetAccuracy(3, 4); got != 75 {
		t.Fatalf("ProphetAccuracy(3, 4) = %v, want 75", got)
	}
	if got := ProphetAccuracy(5, 5); got != 100 {
		t.Fatalf("ProphetAccuracy(5, 5) = %v, want 100", got)
	}
}
