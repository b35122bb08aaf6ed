package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied when the corresponding flags are not given
	DefaultUnit         string  `json:"default_unit"`          // Display label for lengths ("m", "ft", ...)
	DefaultWastePercent float64 `json:"default_waste_percent"` // Waste factor for purchase estimates
	DefaultMinRemnant   string  `json:"default_min_remnant"`   // Minimum leftover length worth keeping

	// Application preferences
	RecentJobs []string `json:"recent_jobs"`
}

// maxRecentJobs caps the recent jobs list.
const maxRecentJobs = 10

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultUnit:         "m",
		DefaultWastePercent: 10.0,
		DefaultMinRemnant:   "1",
		RecentJobs:          []string{},
	}
}

// AddRecentJob records a job file path at the front of the recent list,
// removing any earlier occurrence and trimming the list to its cap.
func (c *AppConfig) AddRecentJob(path string) {
	recent := []string{path}
	for _, p := range c.RecentJobs {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentJobs {
		recent = recent[:maxRecentJobs]
	}
	c.RecentJobs = recent
}
