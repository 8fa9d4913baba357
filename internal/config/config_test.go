package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
schedule:
  start_date: "2026-01-05"
  days: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "2026-01-05", cfg.Schedule.StartDate)
	require.Equal(t, 3, cfg.Schedule.Days)
	require.Equal(t, []string{"09:00", "11:30", "14:00", "16:30"}, cfg.Schedule.StartTimes)
	require.Equal(t, "./res/courses.csv", cfg.Data.CoursesFile)
	require.Equal(t, ":3001", cfg.Server.Addr)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, "config.yml", `
data:
  courses_file: in/courses.csv
  teachers_file: in/teachers.csv
  classrooms_file: in/classrooms.csv
  proximity_file: in/proximity.csv
  enrollments_file: in/enrollments.csv
  exams_file: in/exams.csv
schedule:
  days: 7
  start_times: ["10:00", "15:00"]
  force: true
  node_budget: 50000
  export_file: out/plan.csv
server:
  addr: ":8080"
  db_path: data/runs.db
  upload_dir: data/uploads
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "in/exams.csv", cfg.Data.ExamsFile)
	require.Equal(t, []string{"10:00", "15:00"}, cfg.Schedule.StartTimes)
	require.True(t, cfg.Schedule.Force)
	require.Equal(t, 50000, cfg.Schedule.NodeBudget)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsUnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.toml", `days = 3`)
	_, err := Load(path)
	require.ErrorContains(t, err, "unsupported config format")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for name, content := range map[string]string{
		"bad start date": "schedule:\n  start_date: \"05.01.2026\"\n",
		"bad start time": "schedule:\n  start_times: [\"25:99\"]\n",
		"negative budget": "schedule:\n  node_budget: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "config.yaml", content))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 5, cfg.Schedule.Days)
}

func TestStartDateTime(t *testing.T) {
	sc := ScheduleConfig{StartDate: "2026-01-05"}
	require.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), sc.StartDateTime())

	empty := ScheduleConfig{}
	require.WithinDuration(t, time.Now(), empty.StartDateTime(), time.Minute)
}
