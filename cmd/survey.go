package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/earlycareers/programme-survey/internal/advisor"
	"github.com/earlycareers/programme-survey/internal/advisor/gemini"
	"github.com/earlycareers/programme-survey/internal/eligibility"
	"github.com/earlycareers/programme-survey/internal/navigator"
	"github.com/earlycareers/programme-survey/internal/render"
	"github.com/earlycareers/programme-survey/internal/secrets"
	"github.com/earlycareers/programme-survey/internal/survey"
)

const (
	PromptYes  = "Yes"
	PromptNo   = "No"
	PromptBack = "back"

	keySpringConversion = "converted_spring_to_internship"
	minYear             = 1950
	maxYear             = 2100
)

var (
	errExit = errors.New("exit requested")
	errBack = errors.New("back requested")
)

// booleanKeys maps yes/no questions to the answer they set.
var booleanKeys = map[survey.Step]string{
	survey.StepSpringWeeks:          survey.KeyHasSpringWeeks,
	survey.StepSpringConversion:     keySpringConversion,
	survey.StepInternshipExperience: survey.KeyHasExperience,
	survey.StepGradOffer:            survey.KeyHasGradOffer,
}

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Answer the eligibility survey interactively",
	Run: func(cmd *cobra.Command, _ []string) {
		runSurvey(cmd)
	},
}

func init() {
	rootCmd.AddCommand(surveyCmd)

	surveyCmd.Flags().BoolP("advice", "a", false, "ask the configured AI provider for a personalised note")
	surveyCmd.Flags().IntP("width", "w", render.DefaultWidth, "width of the result card")

	viper.BindPFlag("ai.enabled", surveyCmd.Flags().Lookup("advice"))
}

func runSurvey(cmd *cobra.Command) {
	ctx := cmd.Context()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	calendar := survey.NewCalendar(nil)
	out := cmd.OutOrStdout()

	c := &collector{
		navigator: navigator.New(calendar, logger),
		asker:     promptAsker{},
		out:       out,
		logger:    logger,
	}

	answers, err := c.Run()
	if err != nil {
		if errors.Is(err, errExit) {
			logger.Info("exiting", zap.String("reason", "survey interrupted"))
			return
		}
		logger.Fatal("collecting answers", zap.Error(err))
	}

	profile, result := eligibility.New(calendar, logger).Evaluate(survey.ParseAnswers(answers))

	var advice string
	if config.AI.Enabled {
		advice = adviseOrWarn(ctx, config.AI, profile, result, logger)
	}

	width, _ := cmd.Flags().GetInt("width")
	fmt.Fprintln(out, render.Card(result, advice, width))
}

func adviseOrWarn(ctx context.Context, cfg *AIConfig, profile survey.Profile, result eligibility.Result, logger *zap.Logger) string {
	adv, err := newAdvisor(ctx, cfg, logger)
	if err != nil {
		logger.Warn("skipping advice", zap.Error(err))
		return ""
	}

	advice, err := adv.Advise(ctx, profile, result)
	if err != nil {
		logger.Warn("skipping advice", zap.Error(err))
		return ""
	}

	return advice
}

func newAdvisor(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (advisor.Advisor, error) {
	if cfg == nil || cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when advice is enabled")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries,
		logger.With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries)),
	)
	if err != nil {
		return nil, err
	}

	return gemini.NewAdvisor(generator, logger.With(zap.String("provider", "gemini")), cfg.Gemini.MaxLogLength), nil
}

// asker collects the answers for one descriptor. It returns errBack when the
// user wants the previous question and errExit when they quit.
type asker interface {
	Ask(d navigator.Descriptor) (map[string]any, error)
}

// collector walks the navigator from the welcome step to the end, keeping the
// answer map and the visited steps itself.
type collector struct {
	navigator *navigator.Navigator
	asker     asker
	out       io.Writer
	logger    *zap.Logger
}

func (c *collector) Run() (map[string]any, error) {
	answers := map[string]any{}
	answered := map[survey.Step][]string{}
	var history []survey.Step

	if welcome, ok := navigator.Question(survey.StepWelcome); ok {
		fmt.Fprintln(c.out, welcome.Message)
	}

	d := c.next(answers, survey.StepWelcome, nil)

	for {
		if d.Error != "" {
			fmt.Fprintln(c.out, d.Error)
			retry, ok := navigator.Question(d.NextStep)
			if !ok {
				return nil, fmt.Errorf("no question for step %v", d.NextStep)
			}
			d = retry
		}

		if d.Terminal() {
			fmt.Fprintln(c.out, d.Message)
			return answers, nil
		}

		updates, err := c.asker.Ask(d)
		switch {
		case errors.Is(err, errBack):
			if len(history) == 0 {
				continue
			}
			d = c.next(answers, d.NextStep, history)
			history = history[:len(history)-1]
			for _, key := range answered[d.NextStep] {
				delete(answers, key)
			}
			continue
		case err != nil:
			return nil, err
		}

		maps.Copy(answers, updates)
		answered[d.NextStep] = slices.Collect(maps.Keys(updates))
		history = append(history, d.NextStep)

		c.logger.Debug("answered step", zap.Stringer("step", d.NextStep), zap.Any("answers", updates))

		d = c.next(answers, d.NextStep, nil)
	}
}

// next asks the navigator where to go from current. A non-nil history means
// the user is going back.
func (c *collector) next(answers map[string]any, current survey.Step, history []survey.Step) navigator.Descriptor {
	payload := maps.Clone(answers)
	payload[survey.KeyCurrentStep] = current

	if history != nil {
		steps := make([]any, 0, len(history))
		for _, s := range history {
			steps = append(steps, s)
		}
		payload[survey.KeyIsPrevious] = true
		payload[survey.KeyPreviousSteps] = steps
	}

	return c.navigator.Next(survey.ParseAnswers(payload))
}

type promptAsker struct{}

func (promptAsker) Ask(d navigator.Descriptor) (map[string]any, error) {
	switch d.Type {
	case navigator.TypeSelect:
		choice, err := selectOne(d.Question, d.Options)
		if err != nil {
			return nil, err
		}
		return map[string]any{survey.KeyEducationStage: choice}, nil
	case navigator.TypeBoolean:
		key, ok := booleanKeys[d.NextStep]
		if !ok {
			return nil, fmt.Errorf("no answer key for step %v", d.NextStep)
		}
		yes, err := confirm(d.Question)
		if err != nil {
			return nil, err
		}
		return map[string]any{key: yes}, nil
	case navigator.TypeYearSelection:
		return askTimeline(d)
	default:
		return nil, fmt.Errorf("unsupported question type %q", d.Type)
	}
}

func askTimeline(d navigator.Descriptor) (map[string]any, error) {
	fmt.Println(d.Question)

	start, err := askYear("Start year")
	if err != nil {
		return nil, err
	}

	graduation, err := askYear("Graduation year")
	if err != nil {
		return nil, err
	}

	answers := map[string]any{
		survey.KeyStartYear:      start,
		survey.KeyGraduationYear: graduation,
	}

	if d.HasPlacement {
		placement, err := confirm("Does your degree include a placement year?")
		if err != nil {
			return nil, err
		}
		answers[survey.KeyHasPlacement] = placement
	}

	return answers, nil
}

func selectOne(label string, options []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: append(append([]string{}, options...), PromptBack),
	}

	_, choice, err := prompt.Run()
	if err != nil {
		return "", promptError(err)
	}

	if choice == PromptBack {
		return "", errBack
	}

	return choice, nil
}

func confirm(label string) (bool, error) {
	choice, err := selectOne(label, []string{PromptYes, PromptNo})
	if err != nil {
		return false, err
	}
	return choice == PromptYes, nil
}

func askYear(label string) (int, error) {
	prompt := promptui.Prompt{
		Label:    label + " (or " + PromptBack + ")",
		Validate: validateYear,
	}

	value, err := prompt.Run()
	if err != nil {
		return 0, promptError(err)
	}

	value = strings.TrimSpace(value)
	if strings.EqualFold(value, PromptBack) {
		return 0, errBack
	}

	return strconv.Atoi(value)
}

func validateYear(input string) error {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, PromptBack) {
		return nil
	}

	year, err := strconv.Atoi(input)
	if err != nil {
		return errors.New("enter a year such as 2025")
	}

	if year < minYear || year > maxYear {
		return fmt.Errorf("year must be between %d and %d", minYear, maxYear)
	}

	return nil
}

func promptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return errExit
	}
	return err
}
