package ship

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownShip    = errors.New("unknown ship")
	ErrInvalidProfile = errors.New("invalid ship profile")
)

// MinSpeedKnots is the slowest speed a ship sails at, whatever the weather
const MinSpeedKnots = 5.0

type Type string

const (
	Container Type = "container"
	Bulk      Type = "bulk"
	Tanker    Type = "tanker"
	Cruise    Type = "cruise"
)

// Profile describes the static performance data of a ship
type Profile struct {
	Id          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Type        Type    `yaml:"type" json:"type"`
	CruiseSpeed float64 `yaml:"cruiseSpeed" json:"cruiseSpeed"` // knots
	MaxSpeed    float64 `yaml:"maxSpeed" json:"maxSpeed"`       // knots
	FuelPerNm   float64 `yaml:"fuelPerNm" json:"fuelPerNm"`     // kg fuel per nautical mile at cruise speed
	Co2Factor   float64 `yaml:"co2Factor" json:"co2Factor"`     // kg CO2 per kg fuel
	Windage     float64 `yaml:"windage" json:"windage"`         // 0..1, sensitivity to wind
}

func (p Profile) Validate() error {
	switch {
	case p.Id == "":
		return fmt.Errorf("%w: empty id", ErrInvalidProfile)
	case p.CruiseSpeed <= 0:
		return fmt.Errorf("%w: %v: cruise speed must be positive", ErrInvalidProfile, p.Id)
	case p.MaxSpeed < p.CruiseSpeed:
		return fmt.Errorf("%w: %v: max speed below cruise speed", ErrInvalidProfile, p.Id)
	case p.MaxSpeed < MinSpeedKnots:
		return fmt.Errorf("%w: %v: max speed below %v knots", ErrInvalidProfile, p.Id, MinSpeedKnots)
	case p.FuelPerNm < 0 || p.Co2Factor < 0:
		return fmt.Errorf("%w: %v: negative consumption", ErrInvalidProfile, p.Id)
	case p.Windage < 0 || p.Windage > 1:
		return fmt.Errorf("%w: %v: windage must be in [0, 1]", ErrInvalidProfile, p.Id)
	}
	return nil
}

// Catalog is an immutable set of ship profiles
type Catalog struct {
	profiles map[string]Profile
	ids      []string
	fallback string
}

// NewCatalog validates the profiles. The first profile is the default ship.
func NewCatalog(profiles []Profile) (*Catalog, error) {
	c := &Catalog{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.profiles[p.Id]; ok {
			return nil, fmt.Errorf("%w: duplicate id %v", ErrInvalidProfile, p.Id)
		}
		c.profiles[p.Id] = p
		c.ids = append(c.ids, p.Id)
	}
	if len(c.ids) > 0 {
		c.fallback = c.ids[0]
	}
	sort.Strings(c.ids)
	return c, nil
}

// Get looks up a profile. An empty id selects the default ship.
func (c *Catalog) Get(id string) (Profile, error) {
	if id == "" {
		id = c.fallback
	}
	p, ok := c.profiles[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownShip, id)
	}
	return p, nil
}

// All returns the profiles sorted by id
func (c *Catalog) All() []Profile {
	profiles := make([]Profile, 0, len(c.ids))
	for _, id := range c.ids {
		profiles = append(profiles, c.profiles[id])
	}
	return profiles
}

func (c *Catalog) Len() int { return len(c.ids) }
