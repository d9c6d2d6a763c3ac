package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adesai/stride/internal/clock"
	"github.com/adesai/stride/internal/logger"
	"github.com/adesai/stride/internal/server"
	"github.com/adesai/stride/internal/service"
	"github.com/adesai/stride/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the stride API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cur, err := resolveCurriculum(cmd)
		if err != nil {
			return err
		}

		mode, _ := cmd.Flags().GetString("mode")
		log, err := logger.New(mode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		poolDir := resolvePoolDir(cmd, dbPath)
		svc := service.New(clock.Real{}, poolDir, cur, st, time.Now().UnixNano())

		address, _ := cmd.Flags().GetString("address")
		return server.New(log, svc).Run(address)
	},
}

func init() {
	serveCmd.Flags().String("address", ":8080", "Listen address")
	serveCmd.Flags().String("mode", "prod", "Logger mode (prod or dev)")
}
