// Package cli is the cobra command tree of the gridpath binary.
//
// Command structure:
//
//	gridpath                      root
//	├── solve  -f board.yaml      search a board file (YAML or HCL)
//	├── random --size --seed      search a random board
//	├── version                   print the build version
//	├── --config, -c              YAML config file
//	└── --log-level               overrides log_level from the config
//
// Both search commands print the board as text with the path drawn in and a
// one-line summary, and optionally write a PNG. When metrics are enabled in
// the config a Prometheus endpoint is served on metrics.port for the
// lifetime of the command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/adjacency"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/pathfinder"
	"github.com/katalvlaran/gridpath/render"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// app holds the state shared by every command of one invocation.
type app struct {
	configFile string
	logLevel   string

	cfg     Config
	log     *slog.Logger
	metrics *metrics.Collector
	server  *http.Server
}

// output flags common to solve and random.
type outputFlags struct {
	strict     bool
	pngPath    string
	cellPixels int
	visits     bool
}

// BuildCLI returns the root command. Every call returns an independent tree.
func BuildCLI() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "gridpath: shortest paths on square grid boards",
		Long: `gridpath runs an unweighted breadth-first search between an origin and a
target cell on an N×N board with obstacles, and draws the result.`,
		Version:            Version,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file path (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(a.buildSolveCommand())
	root.AddCommand(a.buildRandomCommand())
	root.AddCommand(buildVersionCommand())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.metrics = metrics.NewCollector(nil)

	if cfg.Metrics.Enabled {
		a.server = a.metrics.NewServer(cfg.Metrics.Port)
		a.log.Info("metrics server listening", "addr", a.server.Addr)
		go func(srv *http.Server) {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Error("metrics server stopped", "err", err)
			}
		}(a.server)
	}
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return a.server.Shutdown(ctx)
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.strict, "strict", false, "drop repeated dequeues from the visit order")
	cmd.Flags().StringVar(&o.pngPath, "png", "", "write the rendered board to this PNG file")
	cmd.Flags().IntVar(&o.cellPixels, "cell-pixels", 0, "cell side in pixels for --png (overrides config)")
	cmd.Flags().BoolVar(&o.visits, "visits", false, "mark visited cells in the output")
}

func (a *app) buildSolveCommand() *cobra.Command {
	var file string
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search a board file",
		Long: `Load a board from a .yaml, .yml or .hcl file and search it. A board names its
size, origin, target and obstacles by cell id, or draws them as a layout of
'.', '#', 'S' and 'T' rows. A board without markers gets random ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := board.LoadFile(file)
			if err != nil {
				return err
			}
			s, err := b.Session(a.sessionOptions(out)...)
			if err != nil {
				return err
			}
			a.log.Debug("board loaded", "file", file, "size", b.Size)
			return a.search(cmd, s, out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "board file (.yaml, .yml or .hcl)")
	_ = cmd.MarkFlagRequired("file")
	out.register(cmd)
	return cmd
}

func (a *app) buildRandomCommand() *cobra.Command {
	var (
		size    int
		seed    int64
		density float64
		save    string
		out     outputFlags
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Search a random board",
		Long: `Create a size×size board, place both markers at random, scatter obstacles
with the given density and search it. The same seed gives the same board.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := append(a.sessionOptions(out), pathfinder.WithRand(grid.NewRand(seed)))
			s, err := pathfinder.ConfigureGrid(size, opts...)
			if err != nil {
				return err
			}
			blocked := s.ScatterObstacles(density)
			a.log.Debug("random board", "size", size, "seed", seed, "blocked", blocked)
			if save != "" {
				if err := saveBoard(save, s.Snapshot()); err != nil {
					return err
				}
			}
			return a.search(cmd, s, out)
		},
	}

	cmd.Flags().IntVar(&size, "size", 20, "board side length")
	cmd.Flags().Int64Var(&seed, "seed", grid.DefaultSeed, "random seed")
	cmd.Flags().Float64Var(&density, "density", 0.25, "probability that an open cell is blocked")
	cmd.Flags().StringVar(&save, "save", "", "write the generated board to this YAML file")
	out.register(cmd)
	return cmd
}

func buildVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridpath %s\n", Version)
		},
	}
}

func (a *app) sessionOptions(out outputFlags) []pathfinder.Option {
	return []pathfinder.Option{
		pathfinder.WithLogger(a.log),
		pathfinder.WithMetrics(a.metrics),
		pathfinder.WithStrictVisits(out.strict || a.cfg.Search.StrictVisits),
	}
}

// search runs one query on s and reports it on the command output.
func (a *app) search(cmd *cobra.Command, s *pathfinder.Session, out outputFlags) error {
	res, err := s.RequestPath(cmd.Context())
	if err != nil {
		return err
	}
	g := s.Snapshot()

	shown := res
	if !out.visits {
		bare := *res
		bare.Order = nil
		shown = &bare
	}
	w := cmd.OutOrStdout()
	if err := render.Text(w, g, shown); err != nil {
		return err
	}
	writeSummary(w, res, adjacency.Build(g))

	if out.pngPath == "" {
		return nil
	}
	px := a.cfg.Render.CellPixels
	if cmd.Flags().Changed("cell-pixels") {
		px = out.cellPixels
	}
	img := render.Image(g, res, render.ImageOptions{
		CellPixels:  px,
		Arrows:      true,
		HideVisited: !out.visits,
	})
	f, err := os.Create(out.pngPath)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	a.log.Info("image written", "file", out.pngPath)
	return f.Close()
}

func writeSummary(w io.Writer, res *bfs.Result, m *adjacency.Mapping) {
	if res.Found {
		fmt.Fprintf(w, "path found: %d steps, %d cells dequeued\n", res.Len(), len(res.Order))
		return
	}
	fmt.Fprintf(w, "no path exists: %d cells dequeued, board has %d open regions\n",
		len(res.Order), len(m.Components()))
}

func saveBoard(path string, g *grid.Grid) error {
	data, err := board.FromGrid(g).YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}
