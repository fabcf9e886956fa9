package service

import (
	"Mirsui/models"
	"testing"
	"time"
)

func newPending(predType string, current int, bet int64, viralDate time.Time) *models.Prediction {
	return &models.Prediction{
		UserID:             1,
		TrackURI:           "spotify:track:abc",
		Title:              "test track",
		CurrentPopularity:  current,
		PredictedViralDate: viralDate,
		PointsBet:          bet,
		PredictionType:     predType,
		Status:             models.PredictionStatusPending,
		SourceID:           "src-1",
	}
}

func TestSettleOutcome_Classification(t *testing.T) {
	now := time.Now()
	due := now.Add(-time.Hour)

	cases := []struct {
		name       string
		predType   string
		current    int
		final      int
		wantStatus string
	}{
		{"看涨且上涨", models.PredictionTypeIncrease, 40, 60, models.PredictionStatusWon},
		{"看涨但下跌", models.PredictionTypeIncrease, 40, 30, models.PredictionStatusLost},
		{"看涨但持平", models.PredictionTypeIncrease, 40, 40, models.PredictionStatusLost},
		{"看跌且下跌", models.PredictionTypeDecrease, 60, 40, models.PredictionStatusWon},
		{"看跌但上涨", models.PredictionTypeDecrease, 60, 80, models.PredictionStatusLost},
		{"看跌但持平", models.PredictionTypeDecrease, 60, 60, models.PredictionStatusLost},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newPending(c.predType, c.current, 100, due)
			out := SettleOutcome(p, c.final, true, now)
			if out.Status != c.wantStatus {
				t.Fatalf("status = %s, want %s", out.Status, c.wantStatus)
			}
			if out.Skip {
				t.Fatal("resolved prediction should never skip")
			}
			if out.FinalPopularity == nil || *out.FinalPopularity != c.final {
				t.Fatalf("final popularity not recorded: %v", out.FinalPopularity)
			}
		})
	}
}

func TestSettleOutcome_WinPayout(t *testing.T) {
	now := time.Now()
	due := now.Add(-time.Hour)

	// 看涨：40 → 60，涨幅 20，下注 100 → 收益 20，入账 120
	p := newPending(models.PredictionTypeIncrease, 40, 100, due)
	out := SettleOutcome(p, 60, true, now)
	if out.PointsGained != 20 {
		t.Fatalf("increase gain = %d, want 20", out.PointsGained)
	}
	if out.Credit != 120 {
		t.Fatalf("increase credit = %d, want 120", out.Credit)
	}

	// 看跌：60 → 40，跌幅 20，下注 100 → 收益 20*1.3=26，入账 126
	p = newPending(models.PredictionTypeDecrease, 60, 100, due)
	out = SettleOutcome(p, 40, true, now)
	if out.PointsGained != 26 {
		t.Fatalf("decrease gain = %d, want 26", out.PointsGained)
	}
	if out.Credit != 126 {
		t.Fatalf("decrease credit = %d, want 126", out.Credit)
	}
}

// 赢了至少有 1 分收益，涨跌幅再小也不能白赢
func TestSettleOutcome_WinGainFloor(t *testing.T) {
	now := time.Now()
	p := newPending(models.PredictionTypeIncrease, 40, 10, now.Add(-time.Hour))
	out := SettleOutcome(p, 41, true, now)
	if out.Status != models.PredictionStatusWon {
		t.Fatalf("status = %s, want won", out.Status)
	}
	if out.PointsGained < 1 {
		t.Fatalf("win gain must be positive, got %d", out.PointsGained)
	}
}

func TestSettleOutcome_LostForfeitsStake(t *testing.T) {
	now := time.Now()
	p := newPending(models.PredictionTypeIncrease, 40, 500, now.Add(-time.Hour))
	out := SettleOutcome(p, 30, true, now)
	if out.Status != models.PredictionStatusLost {
		t.Fatalf("status = %s, want lost", out.Status)
	}
	if out.PointsGained != 0 || out.Credit != 0 {
		t.Fatalf("lost prediction must not pay out: gained=%d credit=%d",
			out.PointsGained, out.Credit)
	}
}

func TestSettleOutcome_UnresolvedGrace(t *testing.T) {
	now := time.Now()

	// 宽限期内：跳过，等下次扫描
	p := newPending(models.PredictionTypeIncrease, 40, 100, now.Add(-24*time.Hour))
	out := SettleOutcome(p, 0, false, now)
	if !out.Skip {
		t.Fatal("unresolved within grace window should skip")
	}

	// 超过宽限期：expired，退一半本金
	p = newPending(models.PredictionTypeIncrease, 40, 100, now.Add(-8*24*time.Hour))
	out = SettleOutcome(p, 0, false, now)
	if out.Status != models.PredictionStatusExpired {
		t.Fatalf("status = %s, want expired", out.Status)
	}
	if !out.PartialReturn {
		t.Fatal("expired settlement must set partial return")
	}
	if out.Credit != 50 || out.PointsGained != 50 {
		t.Fatalf("expired refund = %d/%d, want 50/50", out.Credit, out.PointsGained)
	}
	if out.FinalPopularity != nil {
		t.Fatal("expired settlement has no final popularity")
	}
}
