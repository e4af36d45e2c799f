package dto_test

import (
	"hms/shared/constant"
	"hms/shared/dto"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "hotel_name",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "hotel_name", SortDir: "ASC"},
		},
		{
			name:           "defaults applied",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "no defaults",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "invalid page",
			queryParams:    map[string]string{"page": "abc"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "zero page",
			queryParams:    map[string]string{"page": "0"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "negative limit",
			queryParams:    map[string]string{"limit": "-10"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "unknown sort direction ignored",
			queryParams: map[string]string{"sort_dir": "sideways"},
			expected:    dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{Path: "/api/hotel/get-all-hotels", RawQuery: values.Encode()}}

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, queryParams)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "hotel_id", Value: "HOT00001", Operator: dto.FilterOperatorEq, Table: "rooms"},
			wantWhere: "rooms.hotel_id = :hotel_id",
			wantArgs:  map[string]any{"hotel_id": "HOT00001"},
		},
		{
			name:      "like is case insensitive substring",
			filter:    dto.Filter{Field: "city", Value: "par", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(city) LIKE LOWER(:city) ",
			wantArgs:  map[string]any{"city": "%par%"},
		},
		{
			name:      "in expands every element",
			filter:    dto.Filter{Field: "hotel_id", ArgName: "ids", Value: []string{"HOT00001", "HOT00002"}, Operator: dto.FilterOperatorIn},
			wantWhere: "hotel_id IN (:ids_0, :ids_1) ",
			wantArgs:  map[string]any{"ids_0": "HOT00001", "ids_1": "HOT00002"},
		},
		{
			name:      "empty in never matches",
			filter:    dto.Filter{Field: "hotel_id", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "greater or equal with arg name",
			filter:    dto.Filter{Field: "price_per_night", ArgName: "min_price", Value: 100.0, Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "price_per_night >= :min_price",
			wantArgs:  map[string]any{"min_price": 100.0},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "booking_status", Value: "Cancelled", Operator: dto.FilterOperatorNotEq},
			wantWhere: "booking_status != :booking_status",
			wantArgs:  map[string]any{"booking_status": "Cancelled"},
		},
		{
			name:      "plain query is wrapped",
			filter:    dto.Filter{Value: "rating >= 4", Operator: dto.FilterPlainQuery},
			wantWhere: "(rating >= 4)",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "comment", Table: "reviews", Operator: dto.FilterIsNull},
			wantWhere: "reviews.comment IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator renders nothing",
			filter:    dto.Filter{Field: "city", Value: "Paris", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "hotel_id", Value: "HOT00001", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "booking_status", ArgName: "confirmed", Value: "Confirmed", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "booking_status", ArgName: "completed", Value: "Completed", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(hotel_id = :hotel_id AND (booking_status = :confirmed OR booking_status = :completed))", where)
	assert.Len(t, args, 3)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterGroup_SkipsEmptyParts(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.FilterGroup{Operator: dto.FilterGroupOperatorOr},
			"not a clause",
			dto.Filter{Field: "city", Value: "Paris", Operator: dto.FilterOperatorEq},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(city = :city)", where)
	assert.Equal(t, map[string]any{"city": "Paris"}, args)
}
