package services

// ServiceContainer bundles every service for dependency injection into
// the handler layer.
type ServiceContainer struct {
	AuthService      AuthService
	CardService      CardService
	AnalyticsService AnalyticsService
	AdminService     AdminService
}
