// cmd/main.go

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	_ "github.com/bilingual-invoicing/docs"
	"github.com/bilingual-invoicing/pkg/builder"
	"github.com/bilingual-invoicing/pkg/fonts"
	"github.com/bilingual-invoicing/pkg/i18n"
	"github.com/bilingual-invoicing/pkg/invoice"
	"github.com/bilingual-invoicing/pkg/render"
	"github.com/bilingual-invoicing/pkg/server"
)

// @title           Bilingual Invoicing API
// @version         1.0.0
// @description     Generates Arabic/English invoice PDFs for download, print, or inline viewing.
// @host            localhost:8080
// @BasePath        /

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app := &cli.App{
		Name:  "invoicing",
		Usage: "bilingual invoice PDF generation",
		Commands: []*cli.Command{
			serveCommand(logger),
			generateCommand(logger),
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func serveCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the invoice generation HTTP service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   ":8080",
				Usage:   "listen address",
				EnvVars: []string{"ADDR"},
			},
			&cli.StringFlag{
				Name:    "font-url",
				Usage:   "base URL for the Arabic font files",
				EnvVars: []string{"FONT_BASE_URL"},
			},
		},
		Action: func(c *cli.Context) error {
			provider := fonts.NewHTTPProvider(c.String("font-url"), logger)
			srv := server.New(logger, provider)
			logger.Info("server starting", zap.String("addr", c.String("addr")))
			return http.ListenAndServe(c.String("addr"), srv)
		},
	}
}

func generateCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "render one invoice from a JSON document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "invoice JSON file (default: stdin)",
			},
			&cli.StringFlag{
				Name:  "lang",
				Value: "en",
				Usage: "document language: ar, en, or both",
			},
			&cli.StringFlag{
				Name:  "action",
				Value: "download",
				Usage: "dispatch action: download or open",
			},
			&cli.StringFlag{
				Name:  "out",
				Value: ".",
				Usage: "output directory for downloaded invoices",
			},
			&cli.StringFlag{
				Name:    "font-url",
				Usage:   "base URL for the Arabic font files",
				EnvVars: []string{"FONT_BASE_URL"},
			},
		},
		Action: func(c *cli.Context) error {
			inv, err := readInvoice(c.String("input"))
			if err != nil {
				return err
			}
			sel, err := i18n.ParseSelection(c.String("lang"))
			if err != nil {
				return err
			}
			action, err := render.ParseAction(c.String("action"))
			if err != nil {
				return err
			}
			if action == render.ActionPrint {
				return fmt.Errorf("the print action is only available through the http service")
			}

			doc, err := builder.Assemble(inv, sel)
			if err != nil {
				return err
			}
			provider := fonts.NewHTTPProvider(c.String("font-url"), logger)
			data, result, err := render.PDF(doc, provider.Load(c.Context))
			if err != nil {
				return err
			}

			path := filepath.Join(c.String("out"), render.Filename(inv.InvoiceNumber))
			if action == render.ActionOpen {
				path = filepath.Join(os.TempDir(), render.Filename(inv.InvoiceNumber))
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write invoice: %w", err)
			}
			logger.Info("invoice written",
				zap.String("path", path),
				zap.Int("bytes", len(data)),
				zap.Bool("fallbackFont", result.UsedFallbackFont),
			)
			fmt.Println(path)
			return nil
		},
	}
}

func readInvoice(path string) (invoice.Invoice, error) {
	var inv invoice.Invoice
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return inv, fmt.Errorf("read invoice: %w", err)
	}
	if err := json.Unmarshal(data, &inv); err != nil {
		return inv, fmt.Errorf("parse invoice: %w", err)
	}
	return inv, nil
}
