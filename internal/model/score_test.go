package model

import (
	"math"
	"testing"
)

func TestComputeTotalScore(t *testing.T) {
	tests := []struct {
		name   string
		impact int
		effort int
		want   int
	}{
		{"high impact high effort", 90, 70, 72},
		{"patch scenario", 90, 40, 81},
		{"all zero", 0, 0, 30},
		{"max impact min effort", 100, 0, 100},
		{"min impact max effort", 0, 100, 0},
		{"midpoint", 50, 50, 50},
		{"floor applies", 33, 33, 43}, // 23.1 + 20.1 = 43.2
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTotalScore(tt.impact, tt.effort); got != tt.want {
				t.Errorf("ComputeTotalScore(%d, %d) = %d, want %d", tt.impact, tt.effort, got, tt.want)
			}
		})
	}
}

func TestComputeTotalScoreRange(t *testing.T) {
	for impact := 0; impact <= 100; impact++ {
		for effort := 0; effort <= 100; effort++ {
			got := ComputeTotalScore(impact, effort)
			if got < 0 || got > 100 {
				t.Fatalf("ComputeTotalScore(%d, %d) = %d, out of [0,100]", impact, effort, got)
			}
			want := int(math.Floor(float64(impact)*0.7 + float64(100-effort)*0.3))
			if got != want {
				t.Fatalf("ComputeTotalScore(%d, %d) = %d, want %d", impact, effort, got, want)
			}
		}
	}
}
