package shared

import (
	"context"
	"fmt"
	"hms/shared/cache"
	"hms/shared/constant"
	"hms/shared/dto"
	"hms/shared/failure"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ParseOptionalFloat returns nil for an empty value and an error for anything that is
// not a number.
func ParseOptionalFloat(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == constant.Empty {
		return nil, nil //nolint:nilnil
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(floatValue) || math.IsInf(floatValue, 0) {
		return nil, fmt.Errorf("invalid number %q", value)
	}

	return &floatValue, nil
}

// ParsePage reads a 1-based page number; an empty value is the first page.
func ParsePage(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == constant.Empty {
		return constant.DefaultValuePage, nil
	}

	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 0, failure.InvalidPageParam
	}

	return page, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// RoundTo rounds half away from zero to the given number of decimals.
func RoundTo(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(value*pow) / pow
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByFields builds an AND group of equality filters on one table, in argument order.
func FilterByFields(table string, pairs ...string) dto.FilterGroup {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	for idx := 0; idx+1 < len(pairs); idx += 2 {
		group.Filters = append(group.Filters, dto.Filter{
			Field:    pairs[idx],
			Value:    pairs[idx+1],
			Operator: dto.FilterOperatorEq,
			Table:    table,
		})
	}

	return group
}

// FilterIn matches rows whose field is one of values. An empty list matches nothing.
func FilterIn[V any](table, field string, values []V) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    values,
				Operator: dto.FilterOperatorIn,
				Table:    table,
			},
		},
	}
}

// GroupBy buckets items by key, keeping their order inside each bucket.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)

	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}

	return groups
}

// Paginate returns the items of a 1-based page.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return items
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := min(start+limit, len(items))

	return items[start:end]
}

// BuildCacheKey joins the parts with ':' after the prefix, e.g. hotels:filter:page=1.
func BuildCacheKey(prefix string, parts ...any) string {
	var builder strings.Builder

	builder.WriteString(prefix)

	for idx, part := range parts {
		if idx > 0 {
			builder.WriteString(":")
		}

		fmt.Fprintf(&builder, "%v", part)
	}

	return builder.String()
}

// CacheKey builds a key inside the prefix's current generation, e.g. hotels:3:hotel:HOT00001.
// ok is false when the generation cannot be read and the cache should be bypassed.
func CacheKey(ctx context.Context, store cache.Cache, prefix string, parts ...any) (key string, ok bool) {
	generation, err := store.Generation(ctx, prefix)
	if err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("failed to read cache generation")

		return "", false
	}

	return BuildCacheKey(prefix, append([]any{generation}, parts...)...), true
}

// InvalidateCaches clears every key under each prefix. Failures are logged only; the
// entries still expire at their TTL.
func InvalidateCaches(ctx context.Context, store cache.Cache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := store.Clear(ctx, prefix); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}
