package constants

import "fmt"

// Redis key builders. Pattern: biletsfera:{module}:{operation}:{identifier}
// Keep every cache key here so invalidation patterns stay in one place.

const keyPrefix = "biletsfera"

func CartKey(userID string) string {
	return fmt.Sprintf("%s:cart:user:%s", keyPrefix, userID)
}

func StatsTicketsSoldByEventKey(eventID string) string {
	return fmt.Sprintf("%s:stats:tickets-sold:event:%s", keyPrefix, eventID)
}

func StatsTicketsSoldByOrganiserKey(organiser string) string {
	return fmt.Sprintf("%s:stats:tickets-sold:organiser:%s", keyPrefix, organiser)
}

func StatsEarningsByEventKey(eventID string) string {
	return fmt.Sprintf("%s:stats:earnings:event:%s", keyPrefix, eventID)
}

func StatsEarningsByOrganiserKey(organiser string) string {
	return fmt.Sprintf("%s:stats:earnings:organiser:%s", keyPrefix, organiser)
}

func StatsViewsByOrganiserKey(organiser string) string {
	return fmt.Sprintf("%s:stats:views:organiser:%s", keyPrefix, organiser)
}

func StatsSaleDataKey(organiser string) string {
	return fmt.Sprintf("%s:stats:sale-data:organiser:%s", keyPrefix, organiser)
}

// StatsPattern matches every cached aggregate, for bulk invalidation.
func StatsPattern() string {
	return keyPrefix + ":stats:*"
}
