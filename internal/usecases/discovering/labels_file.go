package discovering

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

// ReadLabelsFile reads one label per line, skipping blank lines.
func ReadLabelsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening labels file %s", path)
	}
	defer f.Close()

	var labels []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if label := strings.TrimSpace(scanner.Text()); label != "" {
			labels = append(labels, label)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading labels file %s", path)
	}
	return labels, nil
}

// FilterLabels keeps the stats whose label was selected and returns the selected labels
// that were not discovered. An empty selection keeps everything.
func FilterLabels(stats []domain.LabelStat, selected []string) (kept []domain.LabelStat, missing []string) {
	if len(selected) == 0 {
		return stats, nil
	}

	wanted := make(map[string]struct{}, len(selected))
	for _, label := range selected {
		wanted[strings.TrimSpace(label)] = struct{}{}
	}

	found := make(map[string]struct{})
	for _, stat := range stats {
		label := strings.TrimSpace(stat.Label)
		if _, ok := wanted[label]; ok {
			kept = append(kept, stat)
			found[label] = struct{}{}
		}
	}

	for _, label := range selected {
		label = strings.TrimSpace(label)
		if _, ok := found[label]; !ok {
			missing = append(missing, label)
			found[label] = struct{}{}
		}
	}
	return kept, missing
}
