package util

import (
	"math"
	"testing"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{42, 42},
		{-42, 42},
		{math.MaxInt, math.MaxInt},
		{-math.MaxInt, math.MaxInt},
	}

	for _, tt := range tests {
		result := Abs(tt.input)
		if result != tt.expected {
			t.Errorf("Abs(%d) = %d; want %d", tt.input, result, tt.expected)
		}
	}
}

func TestAbsInt8(t *testing.T) {
	if Abs(int8(-7)) != 7 {
		t.Errorf("Abs(int8(-7)) should be 7")
	}
	// no positive counterpart, wraps
	if Abs(int8(math.MinInt8)) != math.MinInt8 {
		t.Errorf("Abs(MinInt8) should wrap to MinInt8")
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		input    []int
		expected int
	}{
		{[]int{}, 0},
		{[]int{5}, 5},
		{[]int{1, 7, 3}, 7},
		{[]int{-4, -2, -9}, -2},
	}

	for _, tt := range tests {
		result := Max(tt.input...)
		if result != tt.expected {
			t.Errorf("Max(%v) = %d; want %d", tt.input, result, tt.expected)
		}
	}
}

func TestMin(t *testing.T) {
	tests := []struct {
		input    []int
		expected int
	}{
		{[]int{}, 0},
		{[]int{5}, 5},
		{[]int{1, 7, 3}, 1},
		{[]int{-4, -2, -9}, -9},
	}

	for _, tt := range tests {
		result := Min(tt.input...)
		if result != tt.expected {
			t.Errorf("Min(%v) = %d; want %d", tt.input, result, tt.expected)
		}
	}
}

func TestIfThenElse(t *testing.T) {
	if IfThenElse(true, 1, 2) != 1 {
		t.Error("IfThenElse(true, 1, 2) should be 1")
	}
	if IfThenElse(false, "a", "b") != "b" {
		t.Error("IfThenElse(false, 'a', 'b') should be 'b'")
	}
}
