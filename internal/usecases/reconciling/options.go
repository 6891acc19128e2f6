package reconciling

import (
	"github.com/vfg2006/pmax-campaign-manager/internal/config"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

// OptionsFromConfig builds the run options configured through the environment.
func OptionsFromConfig(cfg *config.Config) (RunOptions, error) {
	index, err := cfg.LabelIndex()
	if err != nil {
		return RunOptions{}, err
	}

	provision, err := cfg.ProvisionOptions()
	if err != nil {
		return RunOptions{}, err
	}

	mode := domain.RunModeDryRun
	if cfg.Run.Apply {
		mode = domain.RunModeApply
	}

	return RunOptions{
		CustomerID:     cfg.Run.CustomerID,
		LabelIndex:     index,
		Prefix:         cfg.Run.Prefix,
		Thresholds:     cfg.Thresholds(),
		DaysBack:       cfg.Run.DaysBack,
		Mode:           mode,
		AutoPauseEmpty: cfg.Run.AutoPauseEmpty,
		DailyBudget:    cfg.Run.DailyBudget,
		TargetROAS:     cfg.TargetROAS(),
		Provision:      provision,
	}, nil
}
