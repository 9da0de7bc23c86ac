package evergreen

import "time"

// PerformanceTestResult is one measurement at one thread level.
type PerformanceTestResult struct {
	ThreadLevel    string    `json:"thread_level"`
	RecordedValues []float64 `json:"recorded_values"`
	MeanValue      float64   `json:"mean_value"`
	Measurement    string    `json:"measurement"`
}

// PerformanceTestRun is one test of a performance batch. Results is kept
// loosely typed; its shape varies between result generators.
type PerformanceTestRun struct {
	Name     string         `json:"name"`
	Workload string         `json:"workload"`
	Start    *time.Time     `json:"start"`
	End      *time.Time     `json:"end"`
	Results  map[string]any `json:"results"`
}

// PerformanceTestBatch is one batch of performance test runs.
type PerformanceTestBatch struct {
	Start         time.Time            `json:"start"`
	End           *time.Time           `json:"end"`
	StorageEngine string               `json:"storageEngine"`
	Errors        []string             `json:"errors"`
	Results       []PerformanceTestRun `json:"results"`
}

// TestRunsMatching returns the runs whose name matches one of tests.
func (b *PerformanceTestBatch) TestRunsMatching(tests []string) []PerformanceTestRun {
	var matching []PerformanceTestRun
	for _, run := range b.Results {
		for _, test := range tests {
			if run.Name == test {
				matching = append(matching, run)
				break
			}
		}
	}
	return matching
}

// PerformanceData is the performance results a task reported.
type PerformanceData struct {
	Name       string               `json:"name"`
	ProjectID  string               `json:"project_id"`
	TaskName   string               `json:"task_name"`
	TaskID     string               `json:"task_id"`
	Variant    string               `json:"variant"`
	VersionID  string               `json:"version_id"`
	BuildID    string               `json:"build_id"`
	Revision   string               `json:"revision"`
	Order      int                  `json:"order"`
	Tag        string               `json:"tag"`
	CreateTime time.Time            `json:"create_time"`
	Data       PerformanceTestBatch `json:"data"`
	IsPatch    bool                 `json:"is_patch"`
}
