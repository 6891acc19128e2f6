package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vfg2006/pmax-campaign-manager/internal/api/handler/router"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/reconciling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/api/test",
			Method:  http.MethodGet,
			Handler: TestAPI(),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		},
	}
}

func Campaigns(discoverer LabelDiscoverer, planner CampaignPlanner, monitor Monitor, defaults reconciling.RunOptions) []router.Route {
	return []router.Route{
		{
			Path:    "/api/discover-labels",
			Method:  http.MethodPost,
			Handler: DiscoverLabels(discoverer, defaults),
		},
		{
			Path:    "/api/preview-campaigns",
			Method:  http.MethodPost,
			Handler: PreviewCampaigns(planner, defaults),
		},
		{
			Path:    "/api/create-campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaigns(planner, defaults),
		},
		{
			Path:    "/api/weekly-monitor",
			Method:  http.MethodPost,
			Handler: WeeklyMonitor(monitor, defaults),
		},
	}
}

func CronJobs(job MonitorScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/monitor/run",
			Method:  http.MethodPost,
			Handler: RunMonitorJob(job),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(job),
		},
	}
}

func Runs(repo RunLister) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/runs",
			Method:  http.MethodGet,
			Handler: ListRuns(repo),
		},
	}
}
