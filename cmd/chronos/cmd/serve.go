package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/mdw-chronos/internal/chronos/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Chronos gRPC service",
	Long: `Starts the Chronos gRPC service (mdw.chronos.v1.ChronosService)
together with the standard gRPC health service.

Examples:
  chronos serve
  chronos serve --port 9160
  CHRONOS_CONFIG=configs/chronos.toml chronos serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (overrides config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveHost != "" {
		appConfig.Chronos.Host = serveHost
	}
	if servePort != 0 {
		appConfig.Chronos.Port = servePort
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.ConfigFrom(appConfig))
	if err != nil {
		return err
	}

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	if err := srv.StartAsync(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Chronos listening on "+appConfig.Address()))

	<-sigCh
	fmt.Fprintln(cmd.OutOrStdout(), typeStyle.Render("Shutting down..."))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Stop(ctx)
	return nil
}
