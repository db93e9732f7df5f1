package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gradsift/gradsift/internal/export"
	"github.com/gradsift/gradsift/internal/filtering"
	"github.com/gradsift/gradsift/internal/jobfeed"
	"github.com/gradsift/gradsift/internal/logger"
	"github.com/gradsift/gradsift/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes                 = "Yes"
	PromptNo                  = "No"
	PromptReportByDepartment  = "Report by department"
	PromptPostingsToFile      = "Dump postings to file"
	PromptAppendToExcludeFile = "Append all postings to exclude file"
	defaultOutputFile         = "jobs_output.csv"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptYes, PromptNo, PromptReportByDepartment, PromptPostingsToFile, PromptAppendToExcludeFile},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the gradsift main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation if found suitable postings")
	runCmd.Flags().StringP("exclude-file", "e", "", "special file with postings to exclude. Default is unset.")
	runCmd.Flags().StringP("output", "o", "", "path of the csv export. Default is "+defaultOutputFile)
	runCmd.Flags().Bool("high-only", false, "keep only high-certainty postings")

	viper.BindPFlag("exclude-file", runCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("output", runCmd.Flags().Lookup("output"))
	viper.BindPFlag("high-only", runCmd.Flags().Lookup("high-only"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the gradsift", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Feed == nil || config.Feed.URL == "" {
		logger.Fatal("feed url is required under feed.url to fetch postings")
	}

	if config.Search == nil {
		config.Search = &jobfeed.SearchParams{}
	}

	token, err := resolveToken(config)
	if err != nil {
		logger.Fatal(
			"loading feed token",
			zap.Error(err),
			zap.String("hint", "set GRADSIFT_TOKEN_FILE environment variable or the 'feed.token-file' key in the configuration file"),
		)
	}

	feed := jobfeed.New(ctx, logger, config.Feed.URL, token)

	if config.Feed.UserAgent != "" {
		feed.UserAgent = config.Feed.UserAgent
	}

	logger.Info("starting the search", zap.String("search", config.Search.Text))

	postings, err := feed.Search(config.Search)
	if err != nil {
		logger.Fatal("getting available postings", zap.Error(err))
	}

	logger.Info("getting postings", zap.Int("count", postings.Len()))

	if postings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings found"))
		return
	}

	filterCfg := &filtering.Config{
		Locations:   config.Locations,
		Departments: config.ExcludeDepartments,
		HighOnly:    viper.GetBool("high-only"),
	}

	steps := []filtering.Filter{
		filtering.NewLocation(),
		filtering.NewExcludedDepartments(),
		filtering.NewExcludeFile(),
		filtering.NewSuitability(),
	}

	if config.DisableLocationFilter {
		filtering.DisableByName(steps, "location", "disabled in config")
	}

	logger.Debug("prepared filters", zap.Any("statuses", filtering.Describe(steps)))

	deps := filtering.Deps{Feed: feed, Logger: logger}

	filtered, assessments, err := filtering.Run(ctx, filterCfg, deps, steps, postings)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	postings = filtered

	logger.Info("scoring completed", zap.Any("buckets", bucketCounts(assessments)))

	if postings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings left after filters"))
		return
	}

	action := PromptYes
	for {
		var err error
		if cmd.Flag("auto-approve").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		logger.Info("current list of postings", zap.Int("count", postings.Len()))

		if err := handleAction(action, logger, postings); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, postings *jobfeed.Postings) error {
	switch action {
	case PromptYes:
		output := strings.TrimSpace(viper.GetString("output"))
		if output == "" {
			output = defaultOutputFile
		}

		if err := export.WriteCSV(output, postings); err != nil {
			return fmt.Errorf("export postings to csv: %w", err)
		}

		logger.Info("successfully exported postings",
			zap.String("filename", output),
			zap.Int("count", postings.Len()),
		)
		return errExit
	case PromptNo:
		logger.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	case PromptReportByDepartment:
		pretty, _ := json.MarshalIndent(postings.ReportByDepartment(), "", "  ")
		logger.Info(string(pretty), zap.Int("postings count", postings.Len()))
		return nil
	case PromptPostingsToFile:
		filename, err := postings.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(logger, postings)
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func appendToExcludeFile(logger *zap.Logger, postings *jobfeed.Postings) error {
	excludeFile := strings.TrimSpace(viper.GetString("exclude-file"))
	if excludeFile == "" {
		return errors.New("exclude file is not configured")
	}

	excluded, err := jobfeed.GetExcludedPostingsFromFile(excludeFile)
	if err != nil {
		return err
	}

	excluded.Append(postings.ToExcluded())

	if err = excluded.ToFile(excludeFile); err != nil {
		return err
	}

	logger.Info("appended to exclude file", zap.String("filename", excludeFile))

	postings.Exclude(jobfeed.PostingIDField, excluded.PostingsIDs())
	return nil
}

func resolveToken(config *Config) (string, error) {
	if config == nil {
		return "", errors.New("config is required")
	}

	tokenFile := strings.TrimSpace(config.Feed.TokenFile)
	if tokenFile == "" {
		tokenFile = strings.TrimSpace(viper.GetString("token-file"))
	}

	// The token is optional: public boards are queried anonymously.
	if tokenFile == "" {
		return "", nil
	}

	return secrets.Load(secrets.Source{
		Name: "feed token",
		File: tokenFile,
	})
}

func bucketCounts(assessments map[string]*jobfeed.Assessment) map[string]int {
	counts := make(map[string]int)
	for _, assessment := range assessments {
		counts[assessment.Bucket]++
	}
	return counts
}
