package availability

import (
	"reflect"
	"testing"
)

func TestMergeRanges(t *testing.T) {
	tests := []struct {
		name string
		in   []TimeRange
		want []TimeRange
	}{
		{"empty", nil, nil},
		{
			name: "disjoint unsorted",
			in:   []TimeRange{FromStartDuration(600, 30), FromStartDuration(60, 30)},
			want: []TimeRange{FromStartDuration(60, 30), FromStartDuration(600, 30)},
		},
		{
			name: "touching merge",
			in:   []TimeRange{FromStartDuration(0, 60), FromStartDuration(60, 60)},
			want: []TimeRange{FromStartDuration(0, 120)},
		},
		{
			name: "overlapping",
			in:   []TimeRange{FromStartDuration(30, 60), FromStartDuration(0, 60)},
			want: []TimeRange{FromStartDuration(0, 90)},
		},
		{
			name: "nested",
			in:   []TimeRange{FromStartDuration(0, 300), FromStartDuration(60, 30), FromStartDuration(120, 30)},
			want: []TimeRange{FromStartDuration(0, 300)},
		},
		{
			name: "duplicates",
			in:   []TimeRange{FromStartDuration(480, 60), FromStartDuration(480, 60)},
			want: []TimeRange{FromStartDuration(480, 60)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeRanges(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("MergeRanges(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMergeRangesDoesNotModifyInput(t *testing.T) {
	in := []TimeRange{FromStartDuration(600, 30), FromStartDuration(60, 30)}
	MergeRanges(in)
	if in[0].Start() != 600 {
		t.Fatal("input slice was reordered")
	}
}

func TestSubtractRanges(t *testing.T) {
	free := []TimeRange{FromStartDuration(0, 300), FromStartDuration(600, 120)}
	tests := []struct {
		name string
		busy []TimeRange
		want []TimeRange
	}{
		{"no busy", nil, free},
		{
			name: "interior split",
			busy: []TimeRange{FromStartDuration(100, 50)},
			want: []TimeRange{FromStartDuration(0, 100), FromStartDuration(150, 150), FromStartDuration(600, 120)},
		},
		{
			name: "head trim",
			busy: []TimeRange{FromStartDuration(550, 100)},
			want: []TimeRange{FromStartDuration(0, 300), FromStartDuration(650, 70)},
		},
		{
			name: "tail trim",
			busy: []TimeRange{FromStartDuration(250, 100)},
			want: []TimeRange{FromStartDuration(0, 250), FromStartDuration(600, 120)},
		},
		{
			name: "full cover",
			busy: []TimeRange{FromStartDuration(0, 300)},
			want: []TimeRange{FromStartDuration(600, 120)},
		},
		{
			name: "several busy in one free",
			busy: []TimeRange{FromStartDuration(10, 10), FromStartDuration(50, 10), FromStartDuration(290, 400)},
			want: []TimeRange{FromStartDuration(0, 10), FromStartDuration(20, 30), FromStartDuration(60, 230), FromStartDuration(690, 30)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subtractRanges(free, tt.busy)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("subtractRanges = %v, want %v", got, tt.want)
			}
		})
	}
}
