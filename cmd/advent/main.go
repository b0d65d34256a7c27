package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	httpadapter "svw.info/advent/internal/adapters/http"
	"svw.info/advent/internal/config"
	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/generator"
	"svw.info/advent/internal/infrastructure/storage"
	"svw.info/advent/internal/metrics"
	"svw.info/advent/internal/observability"
	"svw.info/advent/internal/solver"
	"svw.info/advent/internal/usecase"
	"svw.info/advent/internal/validator"
	"svw.info/advent/web"
)

func main() {
	app := &cli.App{
		Name:  "advent",
		Usage: "run and serve Advent of Code 2021 puzzle solvers",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
			&cli.StringFlag{Name: "log-level", Usage: "debug|info|warn|error"},
			&cli.StringFlag{Name: "inputs", Usage: "directory holding dNN_input.txt files"},
			&cli.StringFlag{Name: "persist-path", Usage: "directory for saved reports"},
			&cli.StringFlag{Name: "trace-exporter", Usage: "none|stdout, spans are written to stderr"},
		},
		Commands: []*cli.Command{
			runCommand(),
			solveCommand(),
			generateCommand(),
			serveCommand(),
			reportsCommand(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "advent:", err)
		os.Exit(1)
	}
}

// env is everything a command needs, built from config and global flags.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	uc     *usecase.Service
	tp     *sdktrace.TracerProvider
}

// close flushes pending spans.
func (e *env) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.tp.Shutdown(ctx); err != nil {
		e.logger.Warn("tracer shutdown", "err", err)
	}
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := c.String("inputs"); v != "" {
		cfg.Inputs = v
	}
	if v := c.String("persist-path"); v != "" {
		cfg.PersistPath = v
	}
	if v := c.String("trace-exporter"); v != "" {
		cfg.Observability.TraceExporter = v
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	uc := usecase.NewService(
		solver.All(),
		storage.NewInputs(cfg.Inputs),
		generator.New(),
		validator.New(),
		storage.NewFS(cfg.PersistPath),
	)
	uc.Logger = logger

	tp, err := observability.Install(cfg.Observability, os.Stderr)
	if err != nil {
		return nil, err
	}
	uc.Tracer = tp.Tracer("svw.info/advent/usecase")
	return &env{cfg: cfg, logger: logger, uc: uc, tp: tp}, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "solve every puzzle, or the selected days, from the inputs directory",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{Name: "day", Aliases: []string{"d"}, Usage: "day to run, repeatable"},
			&cli.BoolFlag{Name: "save", Usage: "persist the report"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			defer e.close()
			report, err := e.uc.Run(c.Context, c.IntSlice("day")...)
			if err != nil {
				return err
			}
			printReport(c.App.Writer, report)
			if c.Bool("save") {
				if err := e.uc.Save(c.Context, report); err != nil {
					return err
				}
				e.logger.Info("report saved", "id", report.ID)
			}
			return nil
		},
	}
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "solve one day from a file or stdin",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "day", Aliases: []string{"d"}, Required: true},
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "input file, - for stdin", Value: "-"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "list every bingo winner (day 4)"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			defer e.close()
			in, err := readInput(c.String("input"))
			if err != nil {
				return err
			}
			day := c.Int("day")
			ans, st, err := e.uc.Solve(c.Context, day, in)
			if err != nil {
				return err
			}
			printAnswer(c.App.Writer, ans)
			fmt.Fprintf(c.App.Writer, "elapsed %d us\n", st.Duration.Microseconds())
			if c.Bool("verbose") && day == 4 {
				ws, err := e.uc.Winners(c.Context, in)
				if err != nil {
					return err
				}
				printWinners(c.App.Writer, ws)
			}
			return nil
		},
	}
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "print a random day 4 input in puzzle format",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "seed", Usage: "random seed, 0 picks one"},
			&cli.IntFlag{Name: "boards", Value: 3},
			&cli.IntFlag{Name: "size", Value: 5},
			&cli.IntFlag{Name: "max-value", Usage: "largest value on a board, 0 for the default"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			defer e.close()
			seed := c.Int64("seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			p, _, err := e.uc.Generate(c.Context, seed, domain.GenerateSpec{
				Boards:   c.Int("boards"),
				Size:     c.Int("size"),
				MaxValue: c.Int("max-value"),
			})
			if err != nil {
				return err
			}
			e.logger.Debug("generated", "seed", seed, "boards", len(p.Boards))
			_, err = c.App.Writer.Write(generator.Format(p))
			return err
		},
	}
}

func reportsCommand() *cli.Command {
	return &cli.Command{
		Name:  "reports",
		Usage: "list saved reports, or show one by id",
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			defer e.close()
			if id := c.Args().First(); id != "" {
				report, err := e.uc.Load(c.Context, id)
				if err != nil {
					return err
				}
				printReport(c.App.Writer, report)
				return nil
			}
			metas, err := e.uc.List(c.Context)
			if err != nil {
				return err
			}
			printMetas(c.App.Writer, metas)
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the HTTP API and web page",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			defer e.close()
			addr := e.cfg.HTTP.Addr
			if v := c.String("addr"); v != "" {
				addr = v
			}
			if err := os.MkdirAll(e.cfg.PersistPath, 0o755); err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			e.uc.Metrics = metrics.New(reg)

			srv := &http.Server{
				Addr: addr,
				Handler: httpadapter.NewRouter(httpadapter.New(e.uc), httpadapter.RouterOptions{
					Logger:    e.logger,
					RateLimit: e.cfg.HTTP.RateLimit,
					Burst:     e.cfg.HTTP.Burst,
					Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
					Index:     web.Index(e.uc.Solvers),
					Static:    web.Static(),
				}),
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				<-c.Context.Done()
				shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdown)
			}()

			e.logger.Info("listening", "addr", addr, "inputs", e.cfg.Inputs, "persist", e.cfg.PersistPath)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
