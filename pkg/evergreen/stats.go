package evergreen

// TestStats is one row of aggregated historical test results.
type TestStats struct {
	TestFile        string  `json:"test_file"`
	TaskName        string  `json:"task_name"`
	Variant         string  `json:"variant"`
	Distro          string  `json:"distro"`
	Date            string  `json:"date"`
	NumPass         int     `json:"num_pass"`
	NumFail         int     `json:"num_fail"`
	AvgDurationPass float64 `json:"avg_duration_pass"`
}

// TaskStats is one row of aggregated historical task results.
type TaskStats struct {
	TaskName        string  `json:"task_name"`
	Variant         string  `json:"variant"`
	Distro          string  `json:"distro"`
	Date            string  `json:"date"`
	NumSuccess      int     `json:"num_success"`
	NumFailed       int     `json:"num_failed"`
	NumTotal        int     `json:"num_total"`
	NumTimeout      int     `json:"num_timeout"`
	AvgDurationPass float64 `json:"avg_duration_success"`
}

// TaskReliability is one row of task success-rate scoring.
type TaskReliability struct {
	TaskName           string  `json:"task_name"`
	Variant            string  `json:"variant"`
	Distro             string  `json:"distro"`
	Date               string  `json:"date"`
	NumSuccess         int     `json:"num_success"`
	NumFailed          int     `json:"num_failed"`
	NumTotal           int     `json:"num_total"`
	NumTimeout         int     `json:"num_timeout"`
	NumTestFailed      int     `json:"num_test_failed"`
	NumSystemFailed    int     `json:"num_system_failed"`
	NumSetupFailed     int     `json:"num_setup_failed"`
	SuccessRate        float64 `json:"success_rate"`
	AvgDurationSuccess float64 `json:"avg_duration_success"`
}
