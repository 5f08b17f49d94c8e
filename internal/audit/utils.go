package audit

import "fmt"

// Interpret renders a log entry as a human-readable sentence for the
// operator activity view.
func Interpret(log LogEntry) string {
	switch log.Verb {
	case Create:
		switch log.ResourceType {
		case UserResource:
			return fmt.Sprintf("Created an operator account (ID: %s)", log.ResourceId)
		case TicketCommentResource:
			return fmt.Sprintf("Commented on a ticket (ID: %s)", log.ResourceId)
		}
	case Deprovision:
		return fmt.Sprintf("Deprovisioned an organization (ID: %s)", log.ResourceId)
	case Get:
		switch log.ResourceType {
		case OrgResource:
			return fmt.Sprintf("Inspected an organization (ID: %s)", log.ResourceId)
		}
	case List:
		switch log.ResourceType {
		case OrgResource:
			return "Listed organizations"
		case TicketResource:
			return "Listed support tickets"
		case ErrorLogResource:
			return "Listed error logs"
		}
	case Login:
		return "Logged into Overseer"
	case Logout:
		return "Logged out of Overseer"
	case Update:
		switch log.ResourceType {
		case FeatureFlagResource:
			return fmt.Sprintf("Toggled a feature flag (key: %s)", log.ResourceId)
		case TicketResource:
			return fmt.Sprintf("Updated a ticket (ID: %s)", log.ResourceId)
		}
	}
	return fmt.Sprintf(
		"Entity[%s[%s]] performed action[%s] on Resource[%s[%s]]",
		log.EntityType,
		log.EntityId,
		log.Verb,
		log.ResourceType,
		log.ResourceId,
	)
}
