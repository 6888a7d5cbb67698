// Command agenda-watch prints the agenda day of one professional in a terminal
// and keeps it fresh: it re-reads the day on a timer and on navigation commands.
//
// Commands: n (next day), p (previous day), t (today), r (refresh), YYYY-MM-DD, q (quit).
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/config"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	agendaRepo "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/infra/storage/agenda"
	backendClient "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/integrations/backend"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/normalize"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/service/dayview"
	getDaySlotsUC "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/get_day_slots"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/logger"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	professionalID := flag.Int64("professional", 0, "professional id")
	dateFlag := flag.String("date", "", "initial date YYYY-MM-DD (default today)")
	flag.Parse()

	if *professionalID <= 0 {
		fmt.Fprintln(os.Stderr, "agenda-watch: -professional is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// В терминал пишем только предупреждения, чтобы не мешать выводу агенды
	log, err := logger.New(cfg.Logs.File, "warn")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	source, closeSource, err := openSource(cfg, log)
	if err != nil {
		log.Fatal("Failed to open agenda source: %v", err)
	}
	defer closeSource()

	// Метрики терминалу не нужны: методы nil *metrics.Metrics ничего не делают
	var noMetrics *metrics.Metrics
	useCase := getDaySlotsUC.NewUseCase(source, cfg.Source.Kind, normalize.New(log), noMetrics, log)
	view := dayview.NewView(useCase, *professionalID, log)

	date := today()
	if *dateFlag != "" {
		date, err = time.ParseInLocation(domain.DateFormat, *dateFlag, time.Local)
		if err != nil {
			log.Fatal("Invalid -date %q: %v", *dateFlag, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := &watcher{view: view, out: os.Stdout}
	w.load(ctx, func(ctx context.Context) (*getDaySlotsUC.Response, error) { return view.Load(ctx, date) })

	commands := make(chan string)
	go readCommands(os.Stdin, commands)

	ticker := time.NewTicker(cfg.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.load(ctx, view.Refresh)
		case cmd, ok := <-commands:
			if !ok {
				return
			}
			switch cmd {
			case "":
			case "q":
				return
			case "n":
				w.load(ctx, func(ctx context.Context) (*getDaySlotsUC.Response, error) { return view.Shift(ctx, 1) })
			case "p":
				w.load(ctx, func(ctx context.Context) (*getDaySlotsUC.Response, error) { return view.Shift(ctx, -1) })
			case "t":
				w.load(ctx, func(ctx context.Context) (*getDaySlotsUC.Response, error) { return view.Load(ctx, today()) })
			case "r":
				w.load(ctx, view.Refresh)
			default:
				d, err := time.ParseInLocation(domain.DateFormat, cmd, time.Local)
				if err != nil {
					fmt.Fprintf(w.out, "unknown command %q\n", cmd)
					continue
				}
				w.load(ctx, func(ctx context.Context) (*getDaySlotsUC.Response, error) { return view.Load(ctx, d) })
			}
		}
	}
}

type watcher struct {
	view *dayview.View
	out  io.Writer
}

// load запускает загрузку в фоне; результат печатается, только если загрузка не устарела
func (w *watcher) load(ctx context.Context, fn func(ctx context.Context) (*getDaySlotsUC.Response, error)) {
	go func() {
		resp, err := fn(ctx)
		switch {
		case errors.Is(err, dayview.ErrStale), errors.Is(err, context.Canceled):
		case err != nil:
			fmt.Fprintf(w.out, "failed to load %s: %v\n", w.view.Selected().Format(domain.DateFormat), err)
		default:
			printDay(w.out, resp)
		}
	}()
}

func printDay(out io.Writer, resp *getDaySlotsUC.Response) {
	fmt.Fprintf(out, "\n== %s (%s) ==\n", resp.Date.Format(domain.DateFormat), resp.Date.Weekday())
	if !resp.HasSchedule || len(resp.Slots) == 0 {
		fmt.Fprintln(out, "no working hours")
		return
	}

	for _, slot := range resp.Slots {
		line := fmt.Sprintf("%s  %-9s", slot.Time, slot.Kind)
		switch {
		case slot.Appointment != nil:
			line += " " + strings.TrimSpace(slot.Appointment.ClientName+" "+slot.Appointment.ServiceName)
		case slot.FreeInterval != nil:
			line += " " + slot.FreeInterval.Label()
		case slot.Fit != nil:
			line += fmt.Sprintf(" %s (%d min)", slot.Fit.Label(), slot.Fit.DurationMinutes)
		}
		fmt.Fprintln(out, line)
	}

	if resp.Dropped > 0 {
		fmt.Fprintf(out, "(%d malformed records skipped)\n", resp.Dropped)
	}
}

func readCommands(in io.Reader, commands chan<- string) {
	defer close(commands)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		commands <- strings.ToLower(strings.TrimSpace(scanner.Text()))
	}
}

func openSource(cfg *config.Config, log *logger.Logger) (getDaySlotsUC.AgendaSource, func(), error) {
	if cfg.Source.Kind != config.SourcePostgres {
		return backendClient.NewClient(cfg.Backend.URL, cfg.BackendTimeout(), log), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return agendaRepo.NewRepository(db), func() { db.Close() }, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
