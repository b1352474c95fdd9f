// Package targeting evaluates an ad's targeting rule against a delivery
// context. It performs no I/O.
package targeting

import (
	"slices"
	"strings"
	"time"

	"adzone/internal/core/domain"
)

// Match reports whether c satisfies every restricted dimension of rule at
// now. A nil rule matches everything. Dimensions are checked in order geo,
// device, browser, OS, language, schedule and the first failing one rejects.
func Match(rule *domain.TargetingRule, c domain.DeliveryContext, now time.Time) bool {
	if rule == nil {
		return true
	}
	if !matchGeo(rule, c) {
		return false
	}
	if len(rule.Devices) > 0 && !slices.Contains(rule.Devices, c.Device) {
		return false
	}
	if len(rule.Browsers) > 0 && !slices.Contains(rule.Browsers, c.Browser) {
		return false
	}
	if len(rule.OperatingSystems) > 0 && !slices.Contains(rule.OperatingSystems, c.OS) {
		return false
	}
	if len(rule.Languages) > 0 && !containsFold(rule.Languages, c.Language) {
		return false
	}
	return matchSchedule(rule.Schedule, now)
}

// matchGeo fails closed: a rule with any geo restriction never matches a
// context whose location is entirely unknown.
func matchGeo(rule *domain.TargetingRule, c domain.DeliveryContext) bool {
	if !rule.HasGeo() {
		return true
	}
	if !c.GeoKnown() {
		return false
	}
	if len(rule.Countries) > 0 && !containsFold(rule.Countries, c.Country) {
		return false
	}
	if len(rule.Regions) > 0 && !containsFold(rule.Regions, c.Region) {
		return false
	}
	if len(rule.Cities) > 0 && !containsFold(rule.Cities, c.City) {
		return false
	}
	return true
}

func matchSchedule(s *domain.Schedule, now time.Time) bool {
	if s.Empty() {
		return true
	}
	loc, ok := location(s.Timezone)
	if !ok {
		return false
	}
	local := now.UTC().In(loc)
	if len(s.Hours) > 0 && !slices.Contains(s.Hours, local.Hour()) {
		return false
	}
	if len(s.Weekdays) > 0 && !slices.Contains(s.Weekdays, isoWeekday(local.Weekday())) {
		return false
	}
	return true
}

// location loads an IANA zone. "Local" is rejected so the result never
// depends on the host configuration.
func location(name string) (*time.Location, bool) {
	if name == "" {
		return time.UTC, true
	}
	if name == "Local" {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// isoWeekday maps Sunday=0 to ISO Sunday=7.
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

func containsFold(list []string, v string) bool {
	if v == "" {
		return false
	}
	return slices.ContainsFunc(list, func(s string) bool {
		return strings.EqualFold(strings.TrimSpace(s), v)
	})
}
