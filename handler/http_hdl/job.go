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

package http_hdl

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modularity-tools/profile-manager/lib"
	"github.com/modularity-tools/profile-manager/lib/model"
)

const jobIdParam = "j"

type jobsQuery struct {
	Status   string `form:"status"`
	SortDesc bool   `form:"sort_desc"`
	Since    string `form:"since"`
	Until    string `form:"until"`
}

func getJobsH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		query := jobsQuery{}
		if err := gc.ShouldBindQuery(&query); err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		jobOptions := model.JobFilter{SortDesc: query.SortDesc}
		if query.Status != "" {
			_, ok := model.JobStateMap[query.Status]
			if !ok {
				_ = gc.Error(model.NewInvalidInputError(fmt.Errorf("unknown job state '%s'", query.Status)))
				return
			}
			jobOptions.Status = query.Status
		}
		if query.Since != "" {
			t, err := time.Parse(time.RFC3339Nano, query.Since)
			if err != nil {
				_ = gc.Error(model.NewInvalidInputError(err))
				return
			}
			jobOptions.Since = t
		}
		if query.Until != "" {
			t, err := time.Parse(time.RFC3339Nano, query.Until)
			if err != nil {
				_ = gc.Error(model.NewInvalidInputError(err))
				return
			}
			jobOptions.Until = t
		}
		jobs, err := a.GetJobs(gc.Request.Context(), jobOptions)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, jobs)
	}
}

func getJobH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		job, err := a.GetJob(gc.Request.Context(), gc.Param(jobIdParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, job)
	}
}

func patchJobCancelH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		err := a.CancelJob(gc.Request.Context(), gc.Param(jobIdParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}
