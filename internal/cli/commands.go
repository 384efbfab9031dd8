package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tradelog/internal/chart"
	"tradelog/internal/config"
	"tradelog/internal/dataflows"
	"tradelog/internal/display"
	"tradelog/internal/logger"
	"tradelog/internal/transcript"
)

// Default run parameters. This tool is run for one trade or one video at
// a time; edit these (or pass the matching flags) before each run.
const (
	defaultStockName = "삼성전자"
	defaultBuyDate   = "20250219"
	defaultBuyPrice  = "58000"
	defaultSellDate  = "20250625"
	defaultSellPrice = "61000"

	defaultVideoURL = "https://www.youtube.com/watch?v=BIvuigQkelk"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "tradelog",
		Short: "Personal trade chart and transcript tools",
		Long: `tradelog renders a candlestick chart for one recorded trade and
downloads the transcript for one YouTube video.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				loaded, err := config.LoadFile(cfgPath)
				if err != nil {
					return err
				}
				*cfg = *loaded
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("create directories: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML configuration file path")

	rootCmd.AddCommand(newChartCmd(cfg))
	rootCmd.AddCommand(newTranscriptCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newChartCmd creates the chart command.
func newChartCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render a trade candlestick chart",
		Long: `Resolve a KRX company name to its ticker, fetch the recent daily
OHLCV window and render a candlestick chart with EMA overlays and
buy/sell markers.
Example: tradelog chart --name 삼성전자 --buy-date 20250219 --buy-price 58000 --sell-date 20250625 --sell-price 61000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			buyDateStr, _ := cmd.Flags().GetString("buy-date")
			buyPriceStr, _ := cmd.Flags().GetString("buy-price")
			sellDateStr, _ := cmd.Flags().GetString("sell-date")
			sellPriceStr, _ := cmd.Flags().GetString("sell-price")

			return runChartCommand(cfg, name, buyDateStr, buyPriceStr, sellDateStr, sellPriceStr)
		},
	}

	cmd.Flags().String("name", defaultStockName, "Company display name or ticker")
	cmd.Flags().String("buy-date", defaultBuyDate, "Buy date in YYYYMMDD format")
	cmd.Flags().String("buy-price", defaultBuyPrice, "Buy price in KRW")
	cmd.Flags().String("sell-date", defaultSellDate, "Sell date in YYYYMMDD format")
	cmd.Flags().String("sell-price", defaultSellPrice, "Sell price in KRW")

	return cmd
}

// runChartCommand executes the chart pipeline. Pipeline failures are
// reported through the log and the printed summary, not as an error.
func runChartCommand(cfg *config.Config, name, buyDate, buyPrice, sellDate, sellPrice string) error {
	trade, err := parseTrade(name, buyDate, buyPrice, sellDate, sellPrice)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}

	krx := dataflows.NewKRXClient(cfg)
	resolver := dataflows.NewTickerResolver(krx)
	generator := chart.NewGenerator(resolver, krx, cfg, log)

	outcome := generator.Run(context.Background(), trade)
	if !outcome.OK {
		fmt.Println(display.ChartFailure(trade.Name))
		return nil
	}
	fmt.Println(display.ChartSuccess(outcome.Name, outcome.Ticker, outcome.File, outcome.Rows))
	return nil
}

func parseTrade(name, buyDate, buyPrice, sellDate, sellPrice string) (dataflows.Trade, error) {
	if name == "" {
		return dataflows.Trade{}, fmt.Errorf("stock name is required")
	}
	buy, err := dataflows.ParseCompactDate(buyDate)
	if err != nil {
		return dataflows.Trade{}, fmt.Errorf("invalid buy date: %w", err)
	}
	sell, err := dataflows.ParseCompactDate(sellDate)
	if err != nil {
		return dataflows.Trade{}, fmt.Errorf("invalid sell date: %w", err)
	}
	buyPx, err := decimal.NewFromString(buyPrice)
	if err != nil {
		return dataflows.Trade{}, fmt.Errorf("invalid buy price: %w", err)
	}
	sellPx, err := decimal.NewFromString(sellPrice)
	if err != nil {
		return dataflows.Trade{}, fmt.Errorf("invalid sell price: %w", err)
	}

	return dataflows.Trade{
		Name:      name,
		BuyDate:   buy,
		BuyPrice:  buyPx,
		SellDate:  sell,
		SellPrice: sellPx,
	}, nil
}

// newTranscriptCmd creates the transcript command.
func newTranscriptCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Download a YouTube video transcript",
		Long: `Extract the video identifier from a YouTube URL, fetch its Korean
caption track and write one caption per line to a text file.
Example: tradelog transcript --url https://youtu.be/BIvuigQkelk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			videoURL, _ := cmd.Flags().GetString("url")
			language, _ := cmd.Flags().GetString("language")
			if language == "" {
				language = cfg.Transcript.Language
			}
			return runTranscriptCommand(cfg, videoURL, language)
		},
	}

	cmd.Flags().String("url", defaultVideoURL, "YouTube video URL")
	cmd.Flags().String("language", "", "Caption language code (default from config)")

	return cmd
}

func runTranscriptCommand(cfg *config.Config, videoURL, language string) error {
	videoID, err := transcript.ExtractVideoID(videoURL)
	if err != nil {
		return err
	}

	client := transcript.NewClient()
	snippets, err := client.Fetch(context.Background(), videoID, language)
	if err != nil {
		return err
	}

	path, err := transcript.WriteFile(cfg.OutputDir, videoID, snippets)
	if err != nil {
		return err
	}

	fmt.Println(display.TranscriptSuccess(videoID, path, len(snippets)))
	return nil
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tradelog v1.0.0")
		},
	}
}
