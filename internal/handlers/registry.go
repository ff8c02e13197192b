package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	CardHandler      *CardHandler
	AnalyticsHandler *AnalyticsHandler
	AdminHandler     *AdminHandler
	HealthHandler    *HealthHandler
}
