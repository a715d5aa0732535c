/*
 * Copyright 2025 modularity-tools
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package job_hdl

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/modularity-tools/profile-manager/lib/model"
)

func newTestJob(meta model.Job) *job {
	ctx, cf := context.WithCancel(context.Background())
	return &job{meta: meta, ctx: ctx, cFunc: cf}
}

func newTestHandler() *Handler {
	base := time.Now().UTC().Add(-time.Minute)
	t1 := base.Add(time.Second)
	t2 := base.Add(2 * time.Second)
	errMsg := "failed"
	h := &Handler{jobs: make(map[string]*job)}
	h.jobs["pending"] = newTestJob(model.Job{ID: "pending", Created: base})
	h.jobs["running"] = newTestJob(model.Job{ID: "running", Created: t1, Started: &t1})
	h.jobs["canceled"] = newTestJob(model.Job{ID: "canceled", Created: base, Started: &t1, Canceled: &t2})
	h.jobs["ok"] = newTestJob(model.Job{ID: "ok", Created: t1, Started: &t1, Completed: &t2})
	h.jobs["err"] = newTestJob(model.Job{ID: "err", Created: t2, Started: &t1, Completed: &t2, Error: errMsg})
	return h
}

func listIDs(jobs []model.Job) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, j := range jobs {
		ids[j.ID] = struct{}{}
	}
	return ids
}

func TestHandler_List_StatusFilter(t *testing.T) {
	h := newTestHandler()
	tests := map[model.JobStatus]map[string]struct{}{
		model.JobPending:   {"pending": {}},
		model.JobRunning:   {"running": {}},
		model.JobCanceled:  {"canceled": {}},
		model.JobCompleted: {"ok": {}, "err": {}},
		model.JobError:     {"err": {}},
		model.JobOK:        {"ok": {}},
	}
	for status, want := range tests {
		jobs := h.List(model.JobFilter{Status: status})
		if ids := listIDs(jobs); !reflect.DeepEqual(ids, want) {
			t.Errorf("status '%s': %v != %v", status, ids, want)
		}
	}
}

func TestHandler_List_Sort(t *testing.T) {
	h := newTestHandler()
	jobs := h.List(model.JobFilter{})
	if len(jobs) != 5 {
		t.Fatalf("len(%v) != 5", jobs)
	}
	for i := 0; i < len(jobs)-1; i++ {
		if jobs[i].Created.After(jobs[i+1].Created) {
			t.Errorf("not ascending: %v", jobs)
		}
	}
	jobs = h.List(model.JobFilter{SortDesc: true})
	for i := 0; i < len(jobs)-1; i++ {
		if jobs[i].Created.Before(jobs[i+1].Created) {
			t.Errorf("not descending: %v", jobs)
		}
	}
}

func TestHandler_List_SinceUntil(t *testing.T) {
	h := newTestHandler()
	pivot := time.Now().UTC().Add(-time.Minute).Add(1500 * time.Millisecond)
	jobs := h.List(model.JobFilter{Since: pivot})
	for _, j := range jobs {
		if !j.Created.After(pivot) {
			t.Errorf("'%s' created before pivot", j.ID)
		}
	}
	jobs = h.List(model.JobFilter{Until: pivot})
	for _, j := range jobs {
		if !j.Created.Before(pivot) {
			t.Errorf("'%s' created after pivot", j.ID)
		}
	}
}

func TestHandler_GetCancel(t *testing.T) {
	h := newTestHandler()
	j, err := h.Get("running")
	if err != nil {
		t.Error("err != nil")
	}
	if j.ID != "running" {
		t.Errorf("%s != running", j.ID)
	}
	var nfe *model.NotFoundError
	if _, err = h.Get("unknown"); err == nil {
		t.Error("err == nil")
	} else if !errors.As(err, &nfe) {
		t.Errorf("unexpected error type: %T", err)
	}
	if err = h.Cancel("unknown"); err == nil {
		t.Error("err == nil")
	}
	if err = h.Cancel("running"); err != nil {
		t.Error("err != nil")
	}
	j, err = h.Get("running")
	if err != nil {
		t.Error("err != nil")
	}
	if j.Canceled == nil {
		t.Error("canceled == nil")
	}
	if !h.jobs["running"].IsCanceled() {
		t.Error("context not canceled")
	}
}

func TestHandler_PurgeJobs(t *testing.T) {
	h := newTestHandler()
	if n := h.PurgeJobs(0); n != 3 {
		t.Errorf("%d != 3", n)
	}
	if len(h.jobs) != 2 {
		t.Errorf("len(%v) != 2", h.jobs)
	}
	if _, ok := h.jobs["pending"]; !ok {
		t.Error("missing 'pending'")
	}
	if _, ok := h.jobs["running"]; !ok {
		t.Error("missing 'running'")
	}
}
