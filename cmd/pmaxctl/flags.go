package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps flags to the configuration keys they override.
var flagKeys = map[string]string{
	"log-level":        "log_level",
	"customer-id":      "pmax_customer_id",
	"label-index":      "pmax_label_index",
	"prefix":           "pmax_prefix",
	"daily-budget":     "pmax_daily_budget",
	"target-roas":      "pmax_target_roas",
	"pmax-type":        "pmax_campaign_type",
	"merchant-id":      "pmax_merchant_id",
	"feed-label":       "pmax_feed_label",
	"target-countries": "pmax_target_countries",
	"target-languages": "pmax_target_languages",
	"start-enabled":    "pmax_start_enabled",
	"eu-political":     "pmax_eu_political",
	"apply":            "pmax_apply",
	"min-impressions":  "pmax_min_impressions",
	"min-conversions":  "pmax_min_conversions",
	"days-back":        "pmax_days_back",
	"auto-pause-empty": "pmax_auto_pause_empty",
	"labels-file":      "pmax_labels_file",
}

type flagGroup func(fs *pflag.FlagSet)

func accountFlags(fs *pflag.FlagSet) {
	fs.String("customer-id", "", "Google Ads customer id, dashes allowed")
	fs.Int("label-index", 0, "custom label index (0-4)")
}

func planFlags(fs *pflag.FlagSet) {
	fs.String("prefix", "PMax Feed", "campaign name prefix")
	fs.Float64("daily-budget", 5.0, "daily budget per campaign in account currency")
	fs.Float64("target-roas", 0, "target ROAS for new campaigns, 0 uses the fallback")
	fs.Bool("derive-troas", false, "derive per-label target ROAS from custom label 1")
	fs.StringSlice("labels", nil, "only these labels (comma separated)")
	fs.String("labels-file", "", "file with one label per line to restrict creation")
}

func provisionFlags(fs *pflag.FlagSet) {
	fs.String("pmax-type", "feed-only", "campaign type: feed-only or normal")
	fs.Int64("merchant-id", 0, "Merchant Center id, looked up when omitted")
	fs.String("feed-label", "", "Merchant Center feed label (defaults to NL for feed-only)")
	fs.StringSlice("target-countries", []string{"NL"}, "ISO country codes to target")
	fs.StringSlice("target-languages", []string{"nl"}, "ISO language codes to target")
	fs.Bool("start-enabled", false, "enable campaigns after creation")
	fs.Bool("eu-political", false, "declare EU political advertising")
}

func monitorFlags(fs *pflag.FlagSet) {
	fs.Int64("min-impressions", 100, "campaigns below this many impressions (and conversions) are empty")
	fs.Int64("min-conversions", 0, "campaigns below this many conversions (and impressions) are empty")
	fs.Int("days-back", 7, "performance window in days, ending yesterday")
	fs.Bool("auto-pause-empty", false, "pause enabled campaigns found empty")
}

func applyFlag(fs *pflag.FlagSet) {
	fs.Bool("apply", false, "perform changes instead of a dry run")
}

// bindFlags lets explicitly set flags take precedence over the environment.
func bindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}
