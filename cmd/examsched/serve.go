package main

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bkaradeniz/go-exam-schedule/internal/config"
	"github.com/bkaradeniz/go-exam-schedule/internal/logger"
	"github.com/bkaradeniz/go-exam-schedule/internal/store"
)

var (
	serverConfig       *config.Config
	serverLog          zerolog.Logger
	scheduleRepository *store.ScheduleRepository
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the exam schedule HTTP service",
	RunE:  serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	var err error
	serverConfig, err = loadConfig()
	if err != nil {
		return err
	}
	if err := logger.SetLevel(serverConfig.Logging.Level); err != nil {
		return err
	}
	serverLog = logger.New("server")

	if err := os.MkdirAll(serverConfig.Server.UploadDir, 0o755); err != nil {
		return err
	}
	if dir := filepath.Dir(serverConfig.Server.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	scheduleRepository, err = store.Open(serverConfig.Server.DBPath)
	if err != nil {
		return err
	}
	defer scheduleRepository.Close()

	r := gin.Default()
	r.Use(corsMiddleware())
	r.GET("/schedule", handleGetSchedule)
	r.GET("/schedule/:id", handleGetScheduleWithId)
	r.DELETE("/schedule/:id", handleDeleteScheduleWithId)
	r.POST("/schedule", handlePostSchedule)

	serverLog.Info().Str("addr", serverConfig.Server.Addr).Msg("listening")
	return r.Run(serverConfig.Server.Addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
