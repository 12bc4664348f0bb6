package services

import (
	"math"
	"strconv"
	"strings"

	"financetracker/backend/models"
)

// Pagination defaults and limits
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParsePagination validates the page and pageSize query parameters. Empty
// values fall back to the defaults.
func ParsePagination(page, pageSize string) (models.Pagination, error) {
	p, err := parsePositive("page", page, DefaultPage)
	if err != nil {
		return models.Pagination{}, err
	}
	size, err := parsePositive("pageSize", pageSize, DefaultPageSize)
	if err != nil {
		return models.Pagination{}, err
	}
	if size > MaxPageSize {
		return models.Pagination{}, &InvalidParameterError{
			Param:   "pageSize",
			Message: "must not exceed " + strconv.Itoa(MaxPageSize),
		}
	}
	if p-1 > math.MaxInt/size {
		return models.Pagination{}, &InvalidParameterError{Param: "page", Message: "is out of range"}
	}
	return models.Pagination{Page: p, PageSize: size}, nil
}

func parsePositive(name, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &InvalidParameterError{Param: name, Message: "must be a positive integer"}
	}
	return n, nil
}

// ParseCategories splits a comma separated category list. Blank entries are
// dropped and duplicates keep their first position.
func ParseCategories(raw string) []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		categories = append(categories, part)
	}
	return categories
}

// ParseDateRange parses optional startDate and endDate parameters.
func ParseDateRange(startDate, endDate string) (models.DateRange, error) {
	var r models.DateRange
	var err error
	if r.Start, err = parseOptionalDate("startDate", startDate); err != nil {
		return models.DateRange{}, err
	}
	if r.End, err = parseOptionalDate("endDate", endDate); err != nil {
		return models.DateRange{}, err
	}
	return r, nil
}

func parseOptionalDate(name, raw string) (*models.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, &InvalidParameterError{Param: name, Message: "must be a date in YYYY-MM-DD format"}
	}
	return &d, nil
}

// ParseID parses a transaction id path segment.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, &InvalidParameterError{Param: "id", Message: "must be a positive integer"}
	}
	return id, nil
}
