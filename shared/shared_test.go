package shared_test

import (
	"testing"

	"guesthouse/shared"
	"guesthouse/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns one page",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns one page",
			total:    25,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    20,
			limit:    10,
			expected: 2,
		},
		{
			name:     "partial last page rounds up",
			total:    21,
			limit:    10,
			expected: 3,
		},
		{
			name:     "fewer rows than limit",
			total:    3,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestFilterByField(t *testing.T) {
	group := shared.FilterByField("Hall A", "RoomName", "Rooms")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}

	if filter.Field != "RoomName" || filter.Table != "Rooms" || filter.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", filter)
	}

	if filter.Value != "Hall A" {
		t.Errorf("expected value 'Hall A', got %v", filter.Value)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("limiter", "127.0.0.1", "curl"); key != "limiter:127.0.0.1:curl" {
		t.Errorf("unexpected cache key: %s", key)
	}
}
