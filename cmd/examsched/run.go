package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bkaradeniz/go-exam-schedule/internal/csvio"
	"github.com/bkaradeniz/go-exam-schedule/internal/logger"
	"github.com/bkaradeniz/go-exam-schedule/internal/scheduler"
)

var forceFlag bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate an exam schedule from CSV snapshot files",
	RunE:  runSchedule,
}

func init() {
	runCmd.Flags().BoolVar(&forceFlag, "force", false, "discard existing exams and reschedule")
	rootCmd.AddCommand(runCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}
	log := logger.New("run")

	snapshot, err := csvio.LoadSnapshot(&cfg.Data, ';')
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	slots, err := scheduler.BuildSlots(cfg.Schedule.StartDateTime(), cfg.Schedule.Days, cfg.Schedule.StartTimes)
	if err != nil {
		return err
	}

	engine, err := scheduler.New(snapshot, slots, scheduler.Options{
		Force:      cfg.Schedule.Force || forceFlag,
		NodeBudget: cfg.Schedule.NodeBudget,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	res := engine.Schedule()
	elapsed := time.Since(start)

	valid, msg := scheduler.Validate(snapshot, res)
	if valid {
		fmt.Println("Passed all tests")
	} else {
		fmt.Println("Invalid schedule:")
	}
	fmt.Println(msg)
	fmt.Print(scheduler.Summary(res))

	outPath, err := csvio.ExportPlan(snapshot, res, cfg.Schedule.ExportFile)
	if err != nil {
		return err
	}

	fmt.Printf("Scheduled: %d/%d\n", len(res.Plan), len(res.Plan)+len(res.Unscheduled))
	fmt.Printf("Timer: %f ms\n", float64(elapsed.Nanoseconds())/1000000.0)
	fmt.Println("Exported output to: " + outPath)
	return nil
}
