package parser

// Layout holds the row windows of the daily report template.
type Layout struct {
	TaskProgress  Window `mapstructure:"task_progress"`
	TomorrowPlans Window `mapstructure:"tomorrow_plans"`
	Workers       Window `mapstructure:"workers"`
	Machinery     Window `mapstructure:"machinery"`
	Problems      Window `mapstructure:"problems"`
	Requirements  Window `mapstructure:"requirements"`
}

// DefaultLayout returns the windows of the standard template.
// Rows 0-4 carry the title and overall progress; section data follows.
func DefaultLayout() Layout {
	return Layout{
		TaskProgress:  Window{Start: 5, End: 19},
		TomorrowPlans: Window{Start: 5, End: 19},
		Workers:       Window{Start: 5, End: 69},
		Machinery:     Window{Start: 5, End: 69},
		Problems:      Window{Start: 5, End: 79},
		Requirements:  Window{Start: 5, End: 79},
	}
}

// SectionNames lists the configuration keys of the layout windows, in
// template order.
var SectionNames = []string{"task_progress", "tomorrow_plans", "workers", "machinery", "problems", "requirements"}

// Windows returns the layout windows keyed by section name.
func (l Layout) Windows() map[string]Window {
	return map[string]Window{
		"task_progress":  l.TaskProgress,
		"tomorrow_plans": l.TomorrowPlans,
		"workers":        l.Workers,
		"machinery":      l.Machinery,
		"problems":       l.Problems,
		"requirements":   l.Requirements,
	}
}
