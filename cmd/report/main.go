// Command report asks for a publisher name or id and prints that
// publisher's sales, one line per sale.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gorm.io/gorm/logger"

	"bookstore-report/internal/config"
	"bookstore-report/internal/database"
	"bookstore-report/internal/i18n"
	"bookstore-report/internal/repositories"
	"bookstore-report/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg, logger.Silent)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db.Pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	svc := services.NewReportService(repositories.NewSalesRepository(db.Gorm))
	if err := run(ctx, os.Stdin, os.Stdout, svc, i18n.NewPrinter(cfg.Lang)); err != nil {
		db.Close()
		log.Fatalf("report failed: %v", err)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer, svc *services.ReportService, p *i18n.Printer) error {
	if _, err := fmt.Fprint(out, p.Prompt()); err != nil {
		return err
	}

	input, err := readLine(in)
	if err != nil {
		return err
	}

	report, err := svc.Generate(ctx, input)
	if err != nil {
		return err
	}
	return report.Render(out, p)
}

// readLine returns one line without its line ending. A final line without a
// newline is accepted; EOF before any input is an error.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("no publisher entered: %w", err)
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
