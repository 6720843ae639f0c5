// Command arff2libsvm prepares ham/spam feature files for LIBSVM, runs svm-scale, svm-train and svm-predict over
// them, and evaluates and aggregates the results of repeated runs.
package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/hscells/arff2libsvm"
	"github.com/hscells/arff2libsvm/config"
	"github.com/hscells/arff2libsvm/output"
	"github.com/hscells/arff2libsvm/svm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	name    = "arff2libsvm"
	version = "19.Oct.2026"
)

type prepareCmd struct {
	ArffFile  string `arg:"positional,required" help:"feature file ending in data.arff"`
	EmptyHam  int    `arg:"positional,required" help:"number of empty ham records to add to the test set"`
	EmptySpam int    `arg:"positional,required" help:"number of empty spam records to add to the test set"`
	Seed      int32  `arg:"positional,required" help:"seed for balancing and shuffling"`
	Progress  bool   `arg:"-p" help:"show a progress bar while parsing"`
}

type scaleCmd struct {
	DataFile string `arg:"positional,required" help:"dataset ending in .unscaled"`
}

type trainCmd struct {
	TrainFile string `arg:"positional,required" help:"training set ending in .train.scaled"`
}

type testCmd struct {
	TestFile  string `arg:"positional,required" help:"test set ending in .test.scaled"`
	ModelFile string `arg:"positional,required" help:"model written by train"`
}

type evaluateCmd struct {
	TestFile       string `arg:"positional,required" help:"test set with the expected labels"`
	PredictionFile string `arg:"positional,required" help:"predictions ending in .prediction"`
}

type aggregateCmd struct {
	PartialResults string `arg:"positional,required" help:"partial results file written by evaluate"`
	TrainTimes     string `arg:"positional,required" help:"train timing file"`
	TestTimes      string `arg:"positional,required" help:"test timing file"`
	Label          string `arg:"-l" help:"label for the summary line (derived from the partial results path by default)"`
	Format         string `arg:"-f" default:"tab" help:"output format: tab or json"`
}

type args struct {
	Prepare   *prepareCmd   `arg:"subcommand:prepare" help:"convert, balance, shuffle and split a feature file"`
	Scale     *scaleCmd     `arg:"subcommand:scale" help:"scale a dataset with svm-scale"`
	Train     *trainCmd     `arg:"subcommand:train" help:"train a model with svm-train"`
	Test      *testCmd      `arg:"subcommand:test" help:"predict a test set with svm-predict"`
	Evaluate  *evaluateCmd  `arg:"subcommand:evaluate" help:"score predictions against the test set"`
	Aggregate *aggregateCmd `arg:"subcommand:aggregate" help:"summarise the results of repeated runs"`

	Config  string `arg:"-c" help:"configuration file (default ~/.arff2libsvm)"`
	Verbose bool   `arg:"-v" help:"log debug output"`
}

func (args) Version() string {
	return fmt.Sprintf("%s %s", name, version)
}

func (args) Description() string {
	return `Prepare ham/spam feature data for LIBSVM and evaluate LIBSVM runs.`
}

// valueFlags take the following argument as their value.
var valueFlags = map[string]bool{
	"-c": true, "--config": true,
	"-l": true, "--label": true,
	"-f": true, "--format": true,
}

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// positionalNegatives moves negative numbers, and the positional values following them, behind a `--` so that they
// are not read as flags. Flags found among them stay in front of the `--`.
func positionalNegatives(argv []string) []string {
	var head, tail []string
	for i := 0; i < len(argv); i++ {
		a := argv[i]
		switch {
		case a == "--":
			return argv
		case strings.HasPrefix(a, "-") && !negativeNumber.MatchString(a):
			head = append(head, a)
			if valueFlags[a] && i+1 < len(argv) {
				i++
				head = append(head, argv[i])
			}
		case len(tail) > 0 || negativeNumber.MatchString(a):
			tail = append(tail, a)
		default:
			head = append(head, a)
		}
	}
	if len(tail) == 0 {
		return argv
	}
	return append(append(head, "--"), tail...)
}

func parseArgs(argv []string) (args, *arg.Parser, error) {
	var a args
	p, err := arg.NewParser(arg.Config{Program: name}, &a)
	if err != nil {
		return a, nil, err
	}
	err = p.Parse(positionalNegatives(argv))
	return a, p, err
}

func main() {
	args, p, err := parseArgs(os.Args[1:])
	switch {
	case p == nil:
		log.Fatal().Err(err).Msg("invalid arguments")
	case err == arg.ErrHelp:
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	case err == arg.ErrVersion:
		fmt.Println(args.Version())
		os.Exit(0)
	case err != nil:
		p.Fail(err.Error())
	case p.Subcommand() == nil:
		p.Fail("missing command: prepare|scale|train|test|evaluate|aggregate")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if args.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	confPath := args.Config
	if len(confPath) == 0 {
		var err error
		confPath, err = config.DefaultPath()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to locate configuration")
		}
	}
	c, err := config.Load(confPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	pipeline := arff2libsvm.NewPipeline(c, svm.NewExecRunner())
	ctx := context.Background()

	switch {
	case args.Prepare != nil:
		cmd := args.Prepare
		pipeline.Progress = cmd.Progress
		_, err = pipeline.Prepare(cmd.ArffFile, cmd.EmptyHam, cmd.EmptySpam, cmd.Seed)
	case args.Scale != nil:
		_, err = pipeline.Scale(ctx, args.Scale.DataFile)
	case args.Train != nil:
		_, err = pipeline.Train(ctx, args.Train.TrainFile)
	case args.Test != nil:
		_, err = pipeline.Test(ctx, args.Test.TestFile, args.Test.ModelFile)
	case args.Evaluate != nil:
		_, err = pipeline.Evaluate(args.Evaluate.TestFile, args.Evaluate.PredictionFile)
	case args.Aggregate != nil:
		err = aggregate(pipeline, c, args.Aggregate)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func aggregate(pipeline arff2libsvm.Pipeline, c config.Config, cmd *aggregateCmd) error {
	formatter, ok := output.Formatters[cmd.Format]
	if !ok {
		return errors.Errorf("unknown format %q", cmd.Format)
	}

	summary, err := pipeline.Aggregate(cmd.PartialResults, cmd.TrainTimes, cmd.TestTimes)
	if err != nil {
		return err
	}

	label := cmd.Label
	if len(label) == 0 {
		label = output.ShortLabel(cmd.PartialResults, c.LabelAnchor)
	}
	line, err := formatter(label, summary)
	if err != nil {
		return err
	}
	fmt.Println(line)
	return nil
}
