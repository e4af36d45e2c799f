package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"hms/config"
	"hms/internal/domains/hotel/model"
	"hms/internal/domains/hotel/model/dto"
	roomModel "hms/internal/domains/room/model"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	argMinPrice = "min_price"
	argMaxPrice = "max_price"
)

type sortKey struct {
	value func(hotel model.Hotel, st stats) float64
	desc  bool
}

// listing describes one hotel listing request.
type listing struct {
	filter    gDto.FilterGroup
	minRating *float64
	sorts     []sortKey
	page      int
	keepRoom  func(roomModel.Room) bool
}

func (s *serviceImpl) GetAll(ctx context.Context, page int) (res dto.HotelListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req := dto.FilterRequest{Page: page}

	return s.cached(ctx, req.CacheKeyParts("all"), func() (dto.HotelListResponse, error) {
		return s.list(ctx, listing{page: page})
	})
}

func (s *serviceImpl) Filter(ctx context.Context, req dto.FilterRequest) (res dto.HotelListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Filter")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if city := strings.TrimSpace(req.City); city != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Value:    city,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	if country := strings.TrimSpace(req.Country); country != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCountry,
			Value:    country,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	var sorts []sortKey

	if desc, ok := direction(req.SortRoomAvailability); ok {
		sorts = append(sorts, sortKey{desc: desc, value: func(hotel model.Hotel, st stats) float64 {
			return float64(st.available[hotel.HotelID])
		}})
	}

	if desc, ok := direction(req.SortBookingsCount); ok {
		sorts = append(sorts, sortKey{desc: desc, value: func(hotel model.Hotel, st stats) float64 {
			return float64(st.bookings[hotel.HotelID])
		}})
	}

	if desc, ok := direction(req.Ratings); ok {
		sorts = append(sorts, sortKey{desc: desc, value: func(hotel model.Hotel, st stats) float64 {
			return st.rating(hotel.HotelID)
		}})
	}

	return s.cached(ctx, req.CacheKeyParts("filter"), func() (dto.HotelListResponse, error) {
		return s.list(ctx, listing{
			filter:    filter,
			minRating: req.MinRating(),
			sorts:     sorts,
			page:      req.Page,
		})
	})
}

// FilterByRoomPrice lists hotels with at least one room priced inside the bounds and
// shows only those rooms.
func (s *serviceImpl) FilterByRoomPrice(ctx context.Context, req dto.PriceFilterRequest) (res dto.HotelListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.FilterByRoomPrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return res, failure.BadRequestFromString("minPrice cannot be greater than maxPrice") //nolint:wrapcheck
	}

	priceFilter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if req.MinPrice != nil {
		priceFilter.Filters = append(priceFilter.Filters, gDto.Filter{
			ArgName:  argMinPrice,
			Field:    roomModel.FieldPricePerNight,
			Value:    *req.MinPrice,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    roomModel.TableName,
		})
	}

	if req.MaxPrice != nil {
		priceFilter.Filters = append(priceFilter.Filters, gDto.Filter{
			ArgName:  argMaxPrice,
			Field:    roomModel.FieldPricePerNight,
			Value:    *req.MaxPrice,
			Operator: gDto.FilterOperatorLessEq,
			Table:    roomModel.TableName,
		})
	}

	inRange := func(room roomModel.Room) bool {
		if req.MinPrice != nil && room.PricePerNight < *req.MinPrice {
			return false
		}

		return req.MaxPrice == nil || room.PricePerNight <= *req.MaxPrice
	}

	return s.cached(ctx, req.CacheKeyParts(), func() (dto.HotelListResponse, error) {
		rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{}, priceFilter, roomModel.FieldHotelID)
		if err != nil {
			return dto.HotelListResponse{}, fmt.Errorf("failed to get rooms in price range: %w", err)
		}

		ids := []string{}
		seen := make(map[string]struct{}, len(rooms))

		for _, room := range rooms {
			if _, ok := seen[room.HotelID]; ok {
				continue
			}

			seen[room.HotelID] = struct{}{}
			ids = append(ids, room.HotelID)
		}

		return s.list(ctx, listing{
			filter:    shared.FilterIn(model.TableName, model.FieldID, ids),
			minRating: req.MinRating,
			page:      req.Page,
			keepRoom:  inRange,
		})
	})
}

func (s *serviceImpl) Get(ctx context.Context, hotelID string) (res dto.GetHotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key, cacheable := shared.CacheKey(ctx, s.cache, constant.CachePrefixHotels, "hotel", hotelID)
	if cacheable {
		if cacheErr := s.cache.Get(ctx, key, &res); cacheErr == nil {
			return res, nil
		} else if !errors.Is(cacheErr, cache.Nil) {
			log.Warn().Err(cacheErr).Str("key", key).Msg("failed to read hotel from cache")
		}
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(hotelID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.HotelID == "" {
		return res, failure.NotFound("Hotel not found") //nolint:wrapcheck
	}

	st, err := s.loadStats(ctx, []string{hotelID})
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to load hotel stats")

		return res, err
	}

	data, err := s.aggregate(ctx, []model.Hotel{hotel}, st, nil)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to aggregate hotel")

		return res, err
	}

	res.Data = data[0]

	if !cacheable {
		return res, nil
	}

	if err := s.cache.Save(ctx, key, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache hotel")
	}

	return res, nil
}

// cached serves a listing page from the cache or computes and stores it. The key
// includes the listing scope and page size since both change the page contents.
func (s *serviceImpl) cached(ctx context.Context, parts []any, load func() (dto.HotelListResponse, error)) (dto.HotelListResponse, error) {
	parts = append(parts, "scope="+s.filterScope(), fmt.Sprintf("size=%d", s.pageSize()))

	key, cacheable := shared.CacheKey(ctx, s.cache, constant.CachePrefixHotels, parts...)
	if !cacheable {
		return load()
	}

	var res dto.HotelListResponse

	cacheErr := s.cache.Get(ctx, key, &res)
	if cacheErr == nil {
		return res, nil
	}

	if !errors.Is(cacheErr, cache.Nil) {
		log.Warn().Err(cacheErr).Str("key", key).Msg("failed to read hotels from cache")
	}

	res, err := load()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to list hotels")

		return res, err
	}

	// a write committed while load ran has moved the prefix to a new generation, so
	// this save is never served
	if err := s.cache.Save(ctx, key, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache hotels")
	}

	return res, nil
}

func (s *serviceImpl) list(ctx context.Context, l listing) (res dto.HotelListResponse, err error) {
	limit := s.pageSize()
	page := max(l.page, constant.DefaultValuePage)

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	var (
		hotels []model.Hotel
		total  int
		st     stats
	)

	if s.filterScope() == config.ListingScopePage {
		params.Page = page
		params.Limit = limit

		if total, err = s.repo.Count(ctx, l.filter); err != nil {
			return res, fmt.Errorf("failed to count hotels: %w", err)
		}

		if hotels, err = s.repo.GetAll(ctx, params, l.filter); err != nil {
			return res, fmt.Errorf("failed to get hotels: %w", err)
		}

		if st, err = s.loadStats(ctx, hotelIDs(hotels)); err != nil {
			return res, err
		}

		hotels = l.apply(hotels, st)
	} else {
		if hotels, err = s.repo.GetAll(ctx, params, l.filter); err != nil {
			return res, fmt.Errorf("failed to get hotels: %w", err)
		}

		if st, err = s.loadStats(ctx, hotelIDs(hotels)); err != nil {
			return res, err
		}

		hotels = l.apply(hotels, st)
		total = len(hotels)
		hotels = shared.Paginate(hotels, page, limit)
	}

	data, err := s.aggregate(ctx, hotels, st, l.keepRoom)
	if err != nil {
		return res, err
	}

	res = dto.HotelListResponse{
		TotalHotels: total,
		CurrentPage: page,
		TotalPages:  shared.CalculateTotalPage(total, limit),
		Data:        data,
	}

	if len(data) == 0 {
		res.Message = "No hotels found"
	}

	return res, nil
}

// apply drops hotels under the minimum rating and orders the rest. Sort keys are
// applied in precedence order; ties keep the incoming (newest first) order.
func (l listing) apply(hotels []model.Hotel, st stats) []model.Hotel {
	if l.minRating != nil {
		hotels = slices.DeleteFunc(hotels, func(hotel model.Hotel) bool {
			return st.rating(hotel.HotelID) < *l.minRating
		})
	}

	if len(l.sorts) == 0 {
		return hotels
	}

	slices.SortStableFunc(hotels, func(a, b model.Hotel) int {
		for _, key := range l.sorts {
			c := cmp.Compare(key.value(a, st), key.value(b, st))
			if key.desc {
				c = -c
			}

			if c != 0 {
				return c
			}
		}

		return 0
	})

	return hotels
}

func direction(value string) (desc bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case dto.SortLowToHigh:
		return false, true
	case dto.SortHighToLow:
		return true, true
	default:
		return false, false
	}
}

func (s *serviceImpl) pageSize() int {
	if s.cfg.App.Listing.PageSize < 1 {
		return constant.DefaultValueLimit
	}

	return s.cfg.App.Listing.PageSize
}

func (s *serviceImpl) filterScope() string {
	if s.cfg.App.Listing.FilterScope == config.ListingScopePage {
		return config.ListingScopePage
	}

	return config.ListingScopeDataset
}
