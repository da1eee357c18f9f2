package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cmdb/core/loader"
	"cmdb/core/logger"
	"cmdb/feature/mocksource"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	mockProfile string
	mockPort    string
)

// mocksourceCmd serves a stub external system for local development.
var mocksourceCmd = &cobra.Command{
	Use:   "mocksource",
	Short: "Serve a stub external device source",
	Long: `Serves a stub external system for local development of the ingest job.

Profiles:
  extsys1  infrastructure inventory (lowerCamel keys, bare-array responses)
  extsys2  network equipment inventory (PascalCase keys, data envelope)

Examples:
  cmdb mocksource --profile extsys1 --port 8001
  cmdb mocksource --profile extsys2 --port 8002`,
	RunE: runMockSource,
}

func init() {
	mocksourceCmd.Flags().StringVar(&mockProfile, "profile", mocksource.ProfileExtsys1, "Source profile to serve (extsys1, extsys2)")
	mocksourceCmd.Flags().StringVar(&mockPort, "port", "8001", "Port to listen on")
	RootCmd.AddCommand(mocksourceCmd)
}

func runMockSource(cmd *cobra.Command, args []string) error {
	logg, err := logger.New(&logger.Config{Level: "info", Format: "console"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	feature, err := mocksource.NewFeature(mockProfile)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	mgr := loader.NewManager()
	mgr.Register(feature)
	if err := mgr.LoadAll(app); err != nil {
		return fmt.Errorf("failed to load mock source: %w", err)
	}

	go func() {
		logg.Info("Mock source running",
			zap.String("profile", mockProfile),
			zap.String("port", mockPort),
		)
		if err := app.Listen(":" + mockPort); err != nil {
			logg.Fatal("Mock source failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	logg.Info("Shutting down mock source...")
	return app.Shutdown()
}
