//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"github.com/google/uuid"
	"slices"
	"sync"
	"time"
)

//
// THREAD SAFE INFRASTRUCTURE: MUTEX
//

const (
	JobQueued   = "queued"
	JobRunning  = "running"
	JobFinished = "finished"
	JobFailed   = "failed"
)

// Job - a training run that the browser can poll or watch via the websocket
type Job struct {
	ID       string    `json:"id"`
	ModelID  string    `json:"model"`
	Status   string    `json:"status"`
	Messages []string  `json:"messages"`
	Err      string    `json:"error,omitempty"`
	Started  time.Time `json:"started"`
	Elapsed  string    `json:"elapsed"`
}

// Done - neither queued nor running
func (j Job) Done() bool {
	return j.Status == JobFinished || j.Status == JobFailed
}

// JobVault - every job this server has launched; finished jobs linger for vv.JOBLINGER
type JobVault struct {
	jobs  map[string]Job
	mutex sync.RWMutex
}

func MakeJobVault() *JobVault {
	return &JobVault{
		jobs:  make(map[string]Job),
		mutex: sync.RWMutex{},
	}
}

// Insert - register a new job for model mid and return a copy of it
func (jv *JobVault) Insert(mid string) Job {
	jv.mutex.Lock()
	defer jv.mutex.Unlock()
	j := Job{
		ID:      uuid.New().String(),
		ModelID: mid,
		Status:  JobQueued,
		Started: time.Now(),
	}
	jv.jobs[j.ID] = j
	return j
}

func (jv *JobVault) Get(id string) (Job, bool) {
	jv.mutex.RLock()
	defer jv.mutex.RUnlock()
	j, ok := jv.jobs[id]
	if ok {
		j.Messages = slices.Clone(j.Messages)
		j.Elapsed = time.Since(j.Started).Round(time.Millisecond).String()
	}
	return j, ok
}

// Note - append a progress message; the job is now running
func (jv *JobVault) Note(id string, m string) {
	jv.update(id, func(j *Job) {
		if !j.Done() {
			j.Status = JobRunning
		}
		j.Messages = append(j.Messages, m)
	})
}

func (jv *JobVault) Finish(id string, err error) {
	jv.update(id, func(j *Job) {
		if err != nil {
			j.Status = JobFailed
			j.Err = err.Error()
			return
		}
		j.Status = JobFinished
	})
}

func (jv *JobVault) update(id string, f func(j *Job)) {
	jv.mutex.Lock()
	defer jv.mutex.Unlock()
	j, ok := jv.jobs[id]
	if !ok {
		return
	}
	f(&j)
	jv.jobs[id] = j
}

// Sweep - forget jobs that finished more than linger ago
func (jv *JobVault) Sweep(linger time.Duration) int {
	jv.mutex.Lock()
	defer jv.mutex.Unlock()
	n := 0
	for id, j := range jv.jobs {
		if j.Done() && time.Since(j.Started) > linger {
			delete(jv.jobs, id)
			n++
		}
	}
	return n
}
