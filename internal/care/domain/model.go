package domain

import (
	"fmt"
	"time"
)

// TaskType is the closed set of care task kinds the scheduler can emit.
type TaskType string

const (
	TaskWater      TaskType = "water"
	TaskFertilize  TaskType = "fertilize"
	TaskHarvest    TaskType = "harvest"
	TaskPrune      TaskType = "prune"
	TaskInspect    TaskType = "inspect"
	TaskMulch      TaskType = "mulch"
	TaskPropagate  TaskType = "propagate"
	TaskTransplant TaskType = "transplant"
	TaskLog        TaskType = "log"
	TaskWeed       TaskType = "weed"
)

// AllTaskTypes lists every valid task type, in generator order.
var AllTaskTypes = []TaskType{
	TaskWater, TaskFertilize, TaskHarvest, TaskPrune, TaskInspect,
	TaskMulch, TaskPropagate, TaskTransplant, TaskLog, TaskWeed,
}

func (t TaskType) Valid() bool {
	for _, tt := range AllTaskTypes {
		if t == tt {
			return true
		}
	}
	return false
}

// MaintenanceLevel applies both to plants (care demand) and gardens (owner effort).
type MaintenanceLevel string

const (
	MaintenanceLow    MaintenanceLevel = "Low"
	MaintenanceMedium MaintenanceLevel = "Medium"
	MaintenanceHigh   MaintenanceLevel = "High"
)

type GrowthRate string

const (
	GrowthFast GrowthRate = "Fast"
	GrowthSlow GrowthRate = "Slow"
)

type SoilTexture string

const (
	SoilSand SoilTexture = "Sand"
	SoilLoam SoilTexture = "Loam"
	SoilClay SoilTexture = "Clay"
)

type Region string

const (
	RegionCoastal   Region = "Coastal"
	RegionMountains Region = "Mountains"
	RegionPiedmont  Region = "Piedmont"
)

// PropagationMethod values recognised by the propagate generator. Any other
// method name is still scheduled, just into the fall window.
const (
	PropagationDivision = "Division"
	PropagationCuttings = "Cuttings"
)

// UserPlantInstance is one plant a user keeps in one garden. Immutable once
// created; the scheduler only reads it.
type UserPlantInstance struct {
	ID        string    `json:"id"`
	GardenID  string    `json:"garden_id"`
	PlantID   string    `json:"plant_id"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
}

// PlantTraits are the botanical attributes of a plant species, keyed by plant ID.
type PlantTraits struct {
	PlantID            string           `json:"plant_id"`
	Maintenance        MaintenanceLevel `json:"maintenance_level"`
	GrowthRate         GrowthRate       `json:"growth_rate"`
	BloomMonths        []string         `json:"bloom_months"`
	HarvestMonths      []string         `json:"harvest_months"`
	PropagationMethods []string         `json:"propagation_methods"`
	KnownProblems      []string         `json:"known_problems"`
	PrefersCoolSeason  bool             `json:"prefers_cool_season"`
}

// GardenSiteAttributes describe the physical site a garden sits on.
// County is empty when the user never set one.
type GardenSiteAttributes struct {
	GardenID     string           `json:"garden_id"`
	SoilTexture  SoilTexture      `json:"soil_texture"`
	ElevationFt  float64          `json:"elevation_ft"`
	UrbanDensity float64          `json:"urban_density"` // 0..1 heat-island index
	Maintenance  MaintenanceLevel `json:"maintenance_level"`
	County       string           `json:"county,omitempty"`
}

// ClimateProfile holds the regional frost calendar and precipitation record
// used to derive season windows.
type ClimateProfile struct {
	Region         Region  `json:"region"`
	LastFrostDOY   int     `json:"last_frost_doy"`
	FirstFrostDOY  int     `json:"first_frost_doy"`
	AnnualPrecipMM float64 `json:"annual_precip_mm"`
	ZoneMin        string  `json:"zone_min"`
	ZoneMax        string  `json:"zone_max"`
}

// TimestampLayout is the wire format for task due dates: ISO-8601 UTC with
// millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is a UTC instant that serializes with millisecond precision.
type Timestamp time.Time

func (ts Timestamp) Time() time.Time { return time.Time(ts) }

func (ts Timestamp) String() string {
	return ts.Time().UTC().Format(TimestampLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.String() + `"`), nil
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string, got %s", s)
	}
	t, err := time.Parse(TimestampLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("parse timestamp: %w", err)
	}
	*ts = Timestamp(t)
	return nil
}

// Task is one scheduled care action for one plant instance. The scheduler
// creates tasks in batches and never mutates them afterwards; completion is
// tracked elsewhere.
type Task struct {
	ID          string    `json:"id,omitempty"`
	UserPlantID string    `json:"user_plant_id"`
	TaskType    TaskType  `json:"task_type"`
	DueDate     Timestamp `json:"due_date"`
	Completed   bool      `json:"completed"`
}

// DedupKey identifies a task within one generation batch.
func (t Task) DedupKey() string {
	return t.UserPlantID + "|" + string(t.TaskType) + "|" + t.DueDate.String()
}
