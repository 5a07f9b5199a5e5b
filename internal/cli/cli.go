// Package cli implements the rttop command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/doingodswork/rttop/internal/config"
	"github.com/doingodswork/rttop/internal/logging"
	"github.com/doingodswork/rttop/internal/present"
	"github.com/doingodswork/rttop/internal/query"
	"github.com/doingodswork/rttop/internal/rt"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// usageError is returned for malformed command lines, e.g. a non-numeric length.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type options struct {
	length   int
	genre    string
	year     int
	noScores bool
	logLevel string
}

// Main loads the configuration from the environment and runs the command with args.
func Main(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return ExitFailure
	}
	return Execute(context.Background(), args, *cfg, stdout, stderr)
}

// Execute runs the command with args and returns the process exit code.
// The list is written to stdout, errors and logs to stderr.
func Execute(ctx context.Context, args []string, cfg config.Config, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(cfg, args, stdout, stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var uErr *usageError
	switch {
	case query.IsArgumentError(err):
		fmt.Fprintln(stderr, err)
		return ExitUsage
	case errors.As(err, &uErr):
		fmt.Fprintln(stderr, "Error:", err)
		fmt.Fprintf(stderr, "Run '%v --help' for usage.\n", cmd.Name())
		return ExitUsage
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return ExitFailure
	}
}

// NewRootCommand creates the rttop command for the given command line arguments.
func NewRootCommand(cfg config.Config, args []string, stdout, stderr io.Writer) *cobra.Command {
	opts := options{}
	rawArgs := args

	cmd := &cobra.Command{
		Use:   "rttop",
		Short: "Return top movies from Rotten Tomatoes site",
		Long: `Prints the top movies of all time from Rotten Tomatoes (https://www.rottentomatoes.com),
optionally the top movies of a single year or of a genre.

For genres of multiple words, type each word of the genre with a space in between:
  rttop -g Science Fiction Fantasy -l 20`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var genreWords []string
			if cmd.Flags().Changed("genre") {
				if before := wordsBeforeGenre(rawArgs, cmd.Flags()); len(before) > 0 {
					return &usageError{fmt.Errorf("unexpected arguments %q, genre words must follow -g/--genre", strings.Join(before, " "))}
				}
				genreWords = append([]string{opts.genre}, args...)
			} else if len(args) > 0 {
				return &usageError{fmt.Errorf("unexpected arguments %q, only genres can consist of multiple words", strings.Join(args, " "))}
			}

			q, err := query.New(opts.length, genreWords, opts.year, cmd.Flags().Changed("year"))
			if err != nil {
				return err
			}

			logger, err := logging.New(opts.logLevel, stderr)
			if err != nil {
				return &usageError{err}
			}
			defer logger.Sync()

			client := rt.NewClient(rt.ClientOptions{
				Timeout:        cfg.Timeout,
				AcceptLanguage: cfg.AcceptLanguage,
				UserAgent:      cfg.UserAgent,
			}, logger)
			lister := &Lister{
				BaseURL: cfg.BaseURL,
				Fetcher: client,
				Out:     stdout,
				Options: present.Options{NoScores: opts.noScores},
				Logger:  logger,
			}
			return lister.List(cmd.Context(), q)
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	flags := cmd.Flags()
	flags.IntVarP(&opts.length, "length", "l", query.DefaultLength, "Specify length of list of movies returned. Must be at most 100")
	flags.StringVarP(&opts.genre, "genre", "g", "", "Select movie genre from following: "+query.GenreList()+
		". For genres of multiple words, type each word of genre with space in between")
	flags.IntVarP(&opts.year, "year", "y", 0, "Choose year to view top [l] movies (cannot be combined with genre)")
	flags.BoolVar(&opts.noScores, "no-scores", false, "Print only the ranked movie names, without Tomatometer scores")
	flags.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, `Log level to show only logs with the given and more severe levels. Can be "debug", "info", "warn", "error"`)

	return cmd
}

// Lister fetches a list page and prints it.
type Lister struct {
	// BaseURL is the all-time top list URL, ending with a slash.
	BaseURL string
	Fetcher Fetcher
	Out     io.Writer
	Options present.Options
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Fetcher retrieves and parses a page. *rt.Client is the production implementation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// List prints the ranked list for q.
// If the page lists fewer movies than requested, all of them are printed and a warning is logged.
func (l *Lister) List(ctx context.Context, q query.Query) error {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	url := q.URL(l.BaseURL)
	logger.Info("Retrieving list", zap.String("url", url), zap.Int("length", q.Length),
		zap.String("genre", string(q.Genre)), zap.Int("year", q.Year))

	doc, err := l.Fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	res, err := rt.Extract(doc)
	if err != nil {
		return fmt.Errorf("couldn't extract list from %v: %w", url, err)
	}
	logger.Debug("Extracted list", zap.String("title", res.Title),
		zap.Int("movies", len(res.Movies)), zap.Int("scores", len(res.Scores)))

	n, err := present.Print(l.Out, res, q.Length, l.Options)
	if err != nil {
		return fmt.Errorf("couldn't print list: %w", err)
	}
	if n < q.Length {
		logger.Warn("The list contains fewer movies than requested", zap.Int("requested", q.Length), zap.Int("available", n))
	}
	return nil
}

// wordsBeforeGenre returns the positional arguments that come before the genre flag.
// Only words after -g/--genre belong to the genre.
func wordsBeforeGenre(args []string, flags *pflag.FlagSet) []string {
	var words []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return words
		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			if name == "genre" || strings.HasPrefix(name, "genre=") {
				return words
			}
			if strings.Contains(name, "=") {
				continue
			}
			if f := flags.Lookup(name); f != nil && f.NoOptDefVal == "" {
				i++
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			short := arg[1:2]
			if short == "g" {
				return words
			}
			if len(arg) > 2 {
				continue
			}
			if f := flags.ShorthandLookup(short); f != nil && f.NoOptDefVal == "" {
				i++
			}
		default:
			words = append(words, arg)
		}
	}
	return words
}
