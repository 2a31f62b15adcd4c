package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/itrgo/internal/calculation"
	"github.com/rgehrsitz/itrgo/internal/config"
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/rgehrsitz/itrgo/internal/logging"
	"github.com/rgehrsitz/itrgo/internal/transform"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// settingsFlags maps settings keys to the command-line flags that override them.
var settingsFlags = map[string]string{
	"format":         "format",
	"rules_file":     "rules",
	"log.level":      "log-level",
	"log.format":     "log-format",
	"server.address": "address",
}

// app is what every command needs: merged settings, a logger and an engine
// built from the selected rules.
type app struct {
	settings config.Settings
	log      *zap.Logger
	engine   *calculation.Engine
	parser   *config.InputParser
}

func newApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	v := config.NewViper(configPath)
	for key, name := range settingsFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	settings, err := config.LoadSettings(v)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		ServiceName: "itrgo",
		Version:     version,
		Level:       settings.Log.Level,
		Format:      settings.Log.Format,
	})
	if err != nil {
		return nil, err
	}

	rules := domain.DefaultTaxRules()
	if settings.RulesFile != "" {
		rules, err = config.LoadRules(settings.RulesFile)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded rules",
			zap.String("file", settings.RulesFile),
			zap.String("assessment_year", rules.Metadata.AssessmentYear))
	}

	engine := calculation.NewEngineWithRules(rules)
	engine.SetLogger(logger.Sugar())

	return &app{
		settings: settings,
		log:      logger,
		engine:   engine,
		parser:   config.NewInputParser(),
	}, nil
}

// loadInput reads a taxpayer file and logs every amount normalization made.
func (a *app) loadInput(path string) (domain.TaxpayerInput, error) {
	input, adjustments, err := a.parser.LoadFromFile(path)
	for _, adj := range adjustments {
		a.log.Warn("input adjusted",
			zap.String("field", adj.Field),
			zap.String("from", adj.From.String()),
			zap.String("to", adj.To.String()))
	}
	return input, err
}

// addWhatIfFlags registers the flags read by loadScenario.
func addWhatIfFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("what-if", nil, "what-if edit applied after loading, e.g. set_deduction:section=80c,amount=150000 (repeatable)")
	cmd.Flags().String("template", "", "comma-separated what-if templates: "+strings.Join(transform.CreateBuiltInTemplates(domain.DefaultTaxRules().Old, domain.UserProfile{}).List(), ", "))
}

// loadScenario loads a taxpayer file, then applies the --template and
// --what-if edits in that order.
func (a *app) loadScenario(cmd *cobra.Command, path string) (domain.TaxpayerInput, error) {
	input, err := a.loadInput(path)
	if err != nil {
		return domain.TaxpayerInput{}, err
	}

	var transforms []transform.InputTransform
	templateList, _ := cmd.Flags().GetString("template")
	templates := transform.CreateBuiltInTemplates(a.engine.Rules.Old, input.Profile)
	for _, name := range transform.ParseTemplateList(templateList) {
		t, ok := templates.Get(name)
		if !ok {
			return domain.TaxpayerInput{}, fmt.Errorf("unknown template %q; available: %s", name, strings.Join(templates.List(), ", "))
		}
		transforms = append(transforms, t.Transforms...)
	}

	specs, _ := cmd.Flags().GetStringArray("what-if")
	edits, err := transform.NewTransformRegistry().ParseTransformSpecs(specs)
	if err != nil {
		return domain.TaxpayerInput{}, err
	}
	transforms = append(transforms, edits...)
	if len(transforms) == 0 {
		return input, nil
	}

	input, err = transform.ApplyTransforms(input, transforms)
	if err != nil {
		return domain.TaxpayerInput{}, err
	}
	for _, t := range transforms {
		a.log.Info("what-if applied", zap.String("transform", t.Name()), zap.String("description", t.Description()))
	}
	return input, a.parser.ValidateInput(input)
}

func (a *app) close() {
	_ = a.log.Sync()
}
