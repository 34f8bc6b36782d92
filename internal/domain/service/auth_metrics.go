package service

// AuthOutcome labels the result of a credential or token check.
type AuthOutcome string

const (
	AuthOutcomeLoginSuccess       AuthOutcome = "login_success"
	AuthOutcomeLoginFailed        AuthOutcome = "login_failed"
	AuthOutcomeRegistered         AuthOutcome = "registered"
	AuthOutcomeRefreshed          AuthOutcome = "refreshed"
	AuthOutcomeMissingCredentials AuthOutcome = "missing_credentials"
	AuthOutcomeInvalidToken       AuthOutcome = "invalid_token"
	AuthOutcomeWrongTokenType     AuthOutcome = "wrong_token_type"
	AuthOutcomeUserNotFound       AuthOutcome = "user_not_found"
	AuthOutcomeInactiveUser       AuthOutcome = "inactive_user"
	AuthOutcomeMalformedHash      AuthOutcome = "malformed_hash"
)

// AuthMetrics records authentication outcomes.
type AuthMetrics interface {
	RecordAuthOutcome(outcome AuthOutcome)
}

// NotificationMetrics counts notifications written for users.
type NotificationMetrics interface {
	RecordNotificationCreated()
}
