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
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/modularity-tools/profile-manager/lib"
	"github.com/modularity-tools/profile-manager/lib/model"
)

func setRoutes(e *gin.Engine, a lib.Api) {
	e.GET(model.ProfilesPath, getProfilesH(a))
	e.POST(model.ProfilesPath, postProfilesH(a))
	e.GET(model.ProfilesPath+"/:"+prfIdParam, getProfileH(a))
	e.DELETE(model.ProfilesPath+"/:"+prfIdParam, deleteProfileH(a))
	e.GET(model.ProfilesPath+"/:"+prfIdParam+"/"+model.ProfileDocumentPath, getProfileDocumentH(a))
	e.GET(model.LatestPath, getLatestProfilesH(a))
	e.POST(model.UpdatesPath, postUpdateProfilesH(a))
	e.GET(model.ReleasesPath, getReleasesH(a))
	e.GET(model.JobsPath, getJobsH(a))
	e.GET(model.JobsPath+"/:"+jobIdParam, getJobH(a))
	e.PATCH(model.JobsPath+"/:"+jobIdParam+"/"+model.JobsCancelPath, patchJobCancelH(a))
	e.GET(model.HealthCheckPath, getServiceHealthH(a))
}

func GetRoutes(e *gin.Engine) [][2]string {
	routes := e.Routes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})
	var rInfo [][2]string
	for _, info := range routes {
		rInfo = append(rInfo, [2]string{info.Method, info.Path})
	}
	return rInfo
}
