package jobs

import (
	"fmt"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs []namedJob
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager creates a job manager running the scheduled rebalance.
func NewJobManager(rebalanceJob *RebalanceJob) *JobManager {
	jm := &JobManager{}
	jm.Add("rebalance", rebalanceJob)
	return jm
}

// Add registers another job. Jobs start in the order they were added.
func (jm *JobManager) Add(name string, job Job) {
	jm.jobs = append(jm.jobs, namedJob{name: name, job: job})
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for i, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully, in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
}
