package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Data     DataConfig     `json:"data"`
	Schedule ScheduleConfig `json:"schedule"`
	Server   ServerConfig   `json:"server"`
	Logging  LoggingConfig  `json:"logging"`
}

// DataConfig lists the CSV snapshot files of a run.
type DataConfig struct {
	CoursesFile     string `json:"courses_file"`
	TeachersFile    string `json:"teachers_file"`
	ClassroomsFile  string `json:"classrooms_file"`
	ProximityFile   string `json:"proximity_file"`
	EnrollmentsFile string `json:"enrollments_file"`
	// ExamsFile holds prior exam assignments. Optional.
	ExamsFile string `json:"exams_file"`
}

type ScheduleConfig struct {
	// StartDate is the first exam day (YYYY-MM-DD). Empty means today.
	StartDate  string   `json:"start_date"`
	Days       int      `json:"days"`
	StartTimes []string `json:"start_times"`
	Force      bool     `json:"force"`
	// NodeBudget caps explored search nodes, 0 is unlimited.
	NodeBudget int    `json:"node_budget"`
	ExportFile string `json:"export_file"`
}

type ServerConfig struct {
	Addr      string `json:"addr"`
	DBPath    string `json:"db_path"`
	UploadDir string `json:"upload_dir"`
}

type LoggingConfig struct {
	Level string `json:"level"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

func (c *Config) SetDefaults() {
	if c.Data.CoursesFile == "" {
		c.Data.CoursesFile = "./res/courses.csv"
	}
	if c.Data.TeachersFile == "" {
		c.Data.TeachersFile = "./res/teachers.csv"
	}
	if c.Data.ClassroomsFile == "" {
		c.Data.ClassroomsFile = "./res/classrooms.csv"
	}
	if c.Data.ProximityFile == "" {
		c.Data.ProximityFile = "./res/proximity.csv"
	}
	if c.Data.EnrollmentsFile == "" {
		c.Data.EnrollmentsFile = "./res/enrollments.csv"
	}
	if c.Schedule.Days == 0 {
		c.Schedule.Days = 5
	}
	if len(c.Schedule.StartTimes) == 0 {
		c.Schedule.StartTimes = []string{"09:00", "11:30", "14:00", "16:30"}
	}
	if c.Schedule.ExportFile == "" {
		c.Schedule.ExportFile = "exams.csv"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":3001"
	}
	if c.Server.DBPath == "" {
		c.Server.DBPath = "db/schedule.db"
	}
	if c.Server.UploadDir == "" {
		c.Server.UploadDir = "db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *Config) Validate() error {
	if c.Schedule.Days <= 0 {
		return fmt.Errorf("schedule.days must be positive, got %d", c.Schedule.Days)
	}
	for _, s := range c.Schedule.StartTimes {
		if _, err := time.Parse("15:04", s); err != nil {
			return fmt.Errorf("invalid schedule.start_times entry %q", s)
		}
	}
	if c.Schedule.StartDate != "" {
		if _, err := time.Parse("2006-01-02", c.Schedule.StartDate); err != nil {
			return fmt.Errorf("invalid schedule.start_date %q", c.Schedule.StartDate)
		}
	}
	if c.Schedule.NodeBudget < 0 {
		return fmt.Errorf("schedule.node_budget must not be negative")
	}
	return nil
}

// StartDate resolves the configured start date, defaulting to today.
func (c *ScheduleConfig) StartDateTime() time.Time {
	if c.StartDate == "" {
		return time.Now()
	}
	t, _ := time.Parse("2006-01-02", c.StartDate)
	return t
}
