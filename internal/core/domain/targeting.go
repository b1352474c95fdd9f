package domain

// TargetingRule describes who should see an ad. Every dimension is
// optional: an empty list places no restriction on that dimension.
type TargetingRule struct {
	Countries        []string  `json:"countries,omitempty" validate:"dive,required"`
	Regions          []string  `json:"regions,omitempty" validate:"dive,required"`
	Cities           []string  `json:"cities,omitempty" validate:"dive,required"`
	Devices          []string  `json:"devices,omitempty" validate:"dive,oneof=desktop mobile tablet"`
	Browsers         []string  `json:"browsers,omitempty" validate:"dive,required"`
	OperatingSystems []string  `json:"operating_systems,omitempty" validate:"dive,required"`
	Languages        []string  `json:"languages,omitempty" validate:"dive,required"`
	Schedule         *Schedule `json:"schedule,omitempty" validate:"omitempty"`
}

// Schedule restricts delivery to certain hours and ISO weekdays, evaluated
// in Timezone. An empty Timezone means UTC.
type Schedule struct {
	Hours    []int  `json:"hours,omitempty" validate:"dive,min=0,max=23"`
	Weekdays []int  `json:"weekdays,omitempty" validate:"dive,min=1,max=7"`
	Timezone string `json:"timezone,omitempty"`
}

// HasGeo reports whether any geo dimension is restricted.
func (r *TargetingRule) HasGeo() bool {
	return len(r.Countries) > 0 || len(r.Regions) > 0 || len(r.Cities) > 0
}

// Empty reports whether the schedule places no restriction.
func (s *Schedule) Empty() bool {
	return s == nil || (len(s.Hours) == 0 && len(s.Weekdays) == 0)
}
