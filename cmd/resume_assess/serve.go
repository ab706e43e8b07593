package main

import (
	"github.com/spf13/cobra"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/ingest"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the assessment pipeline over REST.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := buildApp(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.close()

	port := a.cfg.Port
	if servePort != 0 {
		port = servePort
	}

	srv := server.New(server.Config{
		Port:      port,
		JWTSecret: a.cfg.JWTSecret,
	}, a.runner, a.store, ingest.Decoders{}, a.log)

	return srv.Start()
}
