package googleads

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/pmax-campaign-manager/internal/config"
)

const gaqlDate = "2006-01-02"

var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quote renders s as a single-quoted GAQL string literal.
func quote(s string) string {
	return "'" + literalEscaper.Replace(s) + "'"
}

// likePrefix renders a LIKE pattern matching values starting with prefix.
// GAQL wildcards in the prefix are bracket-escaped.
var likeEscaper = strings.NewReplacer(`[`, `[[]`, `%`, `[%]`, `_`, `[_]`)

func likePrefix(prefix string) string {
	return quote(likeEscaper.Replace(prefix) + "%")
}

// idList renders numeric ids for an IN clause, dropping anything that is not a number.
func idList(ids []string) string {
	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		if d := config.DigitsOnly(id); d != "" {
			clean = append(clean, d)
		}
	}
	return strings.Join(clean, ", ")
}

func dateRange(from, to time.Time) string {
	return fmt.Sprintf("BETWEEN %s AND %s", quote(from.Format(gaqlDate)), quote(to.Format(gaqlDate)))
}

func campaignResource(customerID, campaignID string) string {
	return fmt.Sprintf("customers/%s/campaigns/%s", config.DigitsOnly(customerID), campaignID)
}

func geoTargetResource(id string) string {
	return "geoTargetConstants/" + id
}

func languageResource(id string) string {
	return "languageConstants/" + id
}

// lastSegment returns the id at the end of a resource name.
func lastSegment(resourceName string) string {
	if i := strings.LastIndex(resourceName, "/"); i >= 0 {
		return resourceName[i+1:]
	}
	return resourceName
}
