package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vfg2006/pmax-campaign-manager/infrastructure/database/postgres"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/repository"
	"github.com/vfg2006/pmax-campaign-manager/internal/api"
	"github.com/vfg2006/pmax-campaign-manager/internal/config"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/report"
	"github.com/vfg2006/pmax-campaign-manager/internal/scheduler"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/authenticating"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/campaigning"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/discovering"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/reconciling"
)

var (
	ErrMissingFlag       = errors.New("missing required flag")
	ErrStrategiesFailed  = errors.New("one or more bidding strategies could not be created")
	ErrHistoryNotEnabled = errors.New("run history requires DATABASE_URL")
)

func discoverFlags(fs *pflag.FlagSet) {
	fs.Int("limit", 50, "number of labels to print, 0 prints all")
	fs.Bool("derive-troas", false, "also print the target ROAS derived from custom label 1")
}

func inspectFlags(fs *pflag.FlagSet) {
	fs.String("campaign", "", "campaign id or resource name")
}

func attachFlags(fs *pflag.FlagSet) {
	fs.String("campaign", "", "campaign id or resource name, its first asset group is used")
	fs.String("asset-group", "", "asset group id or resource name")
	fs.String("label", "", "label value to include")
}

func runsFlags(fs *pflag.FlagSet) {
	fs.Uint64("limit", repository.DefaultRunLimit, "number of runs to list")
}

func tokenFlags(fs *pflag.FlagSet) {
	fs.String("subject", "admin", "token subject")
}

func runDiscover(ctx context.Context, e *env) error {
	opts, err := customerOptions(e.cfg)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, e.cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	stats, err := a.discovery.DiscoverLabels(ctx, opts.CustomerID, opts.LabelIndex)
	if err != nil {
		return err
	}

	limit, _ := e.flags.GetInt("limit")
	if err := report.Labels(e.stdout, stats, limit); err != nil {
		return err
	}

	if derive, _ := e.flags.GetBool("derive-troas"); derive {
		targets, err := a.discovery.DeriveTargetROAS(ctx, opts.CustomerID)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout)
		return report.TargetROASByLabel(e.stdout, targets)
	}
	return nil
}

func runPlan(ctx context.Context, e *env) error {
	req, err := campaignRequest(e)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, e.cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	preview, err := a.campaigns.Preview(ctx, req)
	if preview != nil {
		if printErr := printPreview(e, preview); printErr != nil {
			return printErr
		}
	}
	return err
}

func runCreate(ctx context.Context, e *env) error {
	req, err := campaignRequest(e)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, e.cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	if !e.cfg.Run.Apply {
		preview, err := a.campaigns.Preview(ctx, req)
		if preview != nil {
			if printErr := printPreview(e, preview); printErr != nil {
				return printErr
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, "dry run: pass --apply to create these campaigns")
		return nil
	}

	result, err := a.campaigns.Create(ctx, req)
	if result != nil {
		for _, label := range result.Missing {
			fmt.Fprintf(e.stdout, "not found: %s\n", label)
		}
		if len(result.Reports) > 0 {
			if printErr := report.Provisioning(e.stdout, result.Reports); printErr != nil {
				return printErr
			}
		}
	}
	return err
}

func runMonitor(ctx context.Context, e *env) error {
	opts, err := customerOptions(e.cfg)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, e.cfg, true)
	if err != nil {
		return err
	}
	defer a.Close()

	rep, err := a.monitor.Run(ctx, opts)
	if rep != nil {
		if printErr := report.Reconciliation(e.stdout, rep); printErr != nil {
			return printErr
		}
	}
	return err
}

func runInspect(ctx context.Context, e *env) error {
	opts, err := customerOptions(e.cfg)
	if err != nil {
		return err
	}
	campaign, _ := e.flags.GetString("campaign")
	if campaign == "" {
		return fmt.Errorf("%w: --campaign", ErrMissingFlag)
	}

	a, err := newApp(ctx, e.cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	inspection, err := a.provisioning.InspectCampaign(ctx, opts.CustomerID, resourceName(opts.CustomerID, "campaigns", campaign))
	if err != nil {
		return err
	}
	return report.Inspection(e.stdout, inspection)
}

func runAttach(ctx context.Context, e *env) error {
	opts, err := customerOptions(e.cfg)
	if err != nil {
		return err
	}
	label, _ := e.flags.GetString("label")
	campaign, _ := e.flags.GetString("campaign")
	assetGroup, _ := e.flags.GetString("asset-group")
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("%w: --label", ErrMissingFlag)
	}
	if campaign == "" && assetGroup == "" {
		return fmt.Errorf("%w: --campaign or --asset-group", ErrMissingFlag)
	}

	a, err := newApp(ctx, e.cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	if assetGroup != "" {
		assetGroup = resourceName(opts.CustomerID, "assetGroups", assetGroup)
	} else {
		assetGroup, err = a.provisioning.FirstAssetGroup(ctx, opts.CustomerID, resourceName(opts.CustomerID, "campaigns", campaign))
		if err != nil {
			return err
		}
	}

	if opts.Mode != domain.RunModeApply {
		fmt.Fprintf(e.stdout, "dry run: would attach %s=%q to %s\n", opts.LabelIndex.SegmentField(), label, assetGroup)
		return nil
	}

	result, err := a.provisioning.AttachListingGroup(ctx, opts.CustomerID, assetGroup, opts.LabelIndex, label)
	if err != nil {
		return err
	}
	state := "already attached"
	if result.Created {
		state = "attached"
	}
	fmt.Fprintf(e.stdout, "%s %q to %s\n", state, result.Label, result.AssetGroup)
	for _, resource := range result.Resources {
		fmt.Fprintf(e.stdout, "  %s\n", resource)
	}
	return nil
}

func runStrategies(ctx context.Context, e *env) error {
	opts, err := customerOptions(e.cfg)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, e.cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	targets, err := a.discovery.DeriveTargetROAS(ctx, opts.CustomerID)
	if err != nil {
		return err
	}

	if opts.Mode != domain.RunModeApply {
		if err := report.TargetROASByLabel(e.stdout, targets); err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, "dry run: pass --apply to create these strategies")
		return nil
	}

	results, err := a.provisioning.EnsurePortfolioStrategies(ctx, opts.CustomerID, targets)
	if printErr := report.Strategies(e.stdout, results); printErr != nil {
		return printErr
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrStrategiesFailed, failed, len(results))
	}
	return nil
}

func runRuns(ctx context.Context, e *env) error {
	if !e.cfg.Database.Enabled() {
		return ErrHistoryNotEnabled
	}

	conn, err := postgres.NewConnection(ctx, e.cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	limit, _ := e.flags.GetUint64("limit")
	runs, err := repository.NewRunRepository(conn).ListRuns(ctx, config.DigitsOnly(e.cfg.Run.CustomerID), limit)
	if err != nil {
		return err
	}
	return report.Runs(e.stdout, runs)
}

func runServe(ctx context.Context, e *env) error {
	defaults, err := reconciling.OptionsFromConfig(e.cfg)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, e.cfg, true)
	if err != nil {
		return err
	}
	defer a.Close()

	services := api.Services{
		Discoverer:    a.discovery,
		Campaigns:     a.campaigns,
		Monitor:       a.monitor,
		Authenticator: authenticating.NewService(e.cfg.Auth),
		Gatherer:      a.registry,
		Defaults:      defaults,
	}
	if a.runs != nil {
		services.Runs = a.runs
	}

	if e.cfg.Monitor.Enabled {
		if defaults.CustomerID == "" {
			return reconciling.ErrCustomerRequired
		}
		weekly := scheduler.NewWeeklyMonitorService(a.monitor, defaults, e.cfg)
		if err := weekly.Start(ctx); err != nil {
			return err
		}
		services.Scheduler = weekly
	}

	if !services.Authenticator.Enabled() {
		logrus.Warn("AUTH_SECRET is empty, admin endpoints are not protected")
	}

	server, err := api.New(e.cfg, services)
	if err != nil {
		return err
	}
	return server.Run(ctx)
}

func runToken(_ context.Context, e *env) error {
	subject, _ := e.flags.GetString("subject")

	token, err := authenticating.NewService(e.cfg.Auth).GenerateToken(subject)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout, token)
	return err
}

// customerOptions returns the configured run options, failing early without a customer id.
func customerOptions(cfg *config.Config) (reconciling.RunOptions, error) {
	opts, err := reconciling.OptionsFromConfig(cfg)
	if err != nil {
		return opts, err
	}
	if opts.CustomerID == "" {
		return opts, fmt.Errorf("%w: --customer-id", ErrMissingFlag)
	}
	return opts, nil
}

func campaignRequest(e *env) (campaigning.Request, error) {
	opts, err := customerOptions(e.cfg)
	if err != nil {
		return campaigning.Request{}, err
	}

	selected, _ := e.flags.GetStringSlice("labels")
	if e.cfg.Run.LabelsFile != "" {
		fromFile, err := discovering.ReadLabelsFile(e.cfg.Run.LabelsFile)
		if err != nil {
			return campaigning.Request{}, err
		}
		selected = append(selected, fromFile...)
	}
	derive, _ := e.flags.GetBool("derive-troas")

	return campaigning.Request{
		CustomerID:       opts.CustomerID,
		LabelIndex:       opts.LabelIndex,
		SelectedLabels:   selected,
		Prefix:           opts.Prefix,
		DailyBudget:      opts.DailyBudget,
		TargetROAS:       opts.TargetROAS,
		DeriveTargetROAS: derive,
		Provision:        opts.Provision,
	}, nil
}

func printPreview(e *env, preview *campaigning.Preview) error {
	if err := report.Labels(e.stdout, preview.Selected, 0); err != nil {
		return err
	}
	for _, label := range preview.Missing {
		fmt.Fprintf(e.stdout, "not found: %s\n", label)
	}
	fmt.Fprintln(e.stdout)
	return report.Plans(e.stdout, preview.Plans)
}

// resourceName accepts either a bare id or a full resource name.
func resourceName(customerID, collection, value string) string {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "customers/") {
		return value
	}
	return fmt.Sprintf("customers/%s/%s/%s", customerID, collection, value)
}
