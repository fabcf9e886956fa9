package service

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDiscoverRating(t *testing.T) {
	cases := []struct {
		name       string
		popularity int
		position   int
		want       float64
	}{
		{"冷门曲目第一名", 40, 1, 160},
		{"冷门曲目第二名", 40, 2, 110},
		{"零流行度第一名", 0, 1, 200},
		{"满流行度第一名", 100, 1, 100},
		{"满流行度靠后名次", 100, 100, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DiscoverRating(c.popularity, c.position)
			if !almostEqual(got, c.want) {
				t.Fatalf("DiscoverRating(%d, %d) = %v, want %v",
					c.popularity, c.position, got, c.want)
			}
		})
	}
}

// 流行度越低评分越高
func TestDiscoverRating_PopularityMonotonic(t *testing.T) {
	for pop := 1; pop <= 100; pop++ {
		lower := DiscoverRating(pop, 3)
		higher := DiscoverRating(pop-1, 3)
		if higher <= lower {
			t.Fatalf("rating should rise as popularity falls: pop=%d got %v vs %v",
				pop, higher, lower)
		}
	}
}

// 名次越靠前评分越高
func TestDiscoverRating_PositionMonotonic(t *testing.T) {
	for pos := 2; pos <= 100; pos++ {
		later := DiscoverRating(50, pos)
		earlier := DiscoverRating(50, pos-1)
		if earlier <= later {
			t.Fatalf("rating should fall as position grows: pos=%d got %v vs %v",
				pos, earlier, later)
		}
	}
}

func TestDiscoverRating_InvalidPosition(t *testing.T) {
	// 异常名次按第一名兜底，不能除零
	if got := DiscoverRating(40, 0); !almostEqual(got, 160) {
		t.Fatalf("DiscoverRating(40, 0) = %v, want 160", got)
	}
}
