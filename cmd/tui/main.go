package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nyc-safety-calculator/internal/config"
	"github.com/nyc-safety-calculator/internal/domain"
	"github.com/nyc-safety-calculator/internal/pkg/logger"
	"github.com/nyc-safety-calculator/internal/repository/table"
)

var (
	cfg *config.Config
	log = zap.NewNop()

	tableFile string
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "safetycalc",
	Short: "NYC neighborhood safety calculator",
	Long:  "Estimates how much a local trip reduces traffic fatality risk compared to travelling from a NYC neighborhood.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if tableFile == "" {
			tableFile = cfg.Table.File
		}
		if logFile == "" {
			logFile = cfg.Log.File
		}

		// экран занят интерфейсом, поэтому логи только в файл
		if logFile != "" {
			l, err := logger.New(cfg.Log.Level, logFile)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			log = l
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tableFile, "table", "", "YAML file with the distance table (default: built-in NYC table)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
}

// loadTable читает таблицу из --table или TABLE_FILE
func loadTable() (*domain.DistanceTable, error) {
	t, err := table.LoadFile(tableFile)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}
	return t, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
