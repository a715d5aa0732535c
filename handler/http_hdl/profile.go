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
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/modularity-tools/profile-manager/lib"
	"github.com/modularity-tools/profile-manager/lib/model"
)

const prfIdParam = "p"

type profilesQuery struct {
	Name string `form:"name"`
	Arch string `form:"arch"`
}

func getProfilesH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		query := profilesQuery{}
		if err := gc.ShouldBindQuery(&query); err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		profiles, err := a.GetProfiles(gc.Request.Context(), model.ProfileFilter{
			Name: query.Name,
			Arch: query.Arch,
		})
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, profiles)
	}
}

func postProfilesH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		ids, err := a.AddProfiles(gc.Request.Context(), gc.Request.Body)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, ids)
	}
}

func getProfileH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		p, err := a.GetProfile(gc.Request.Context(), gc.Param(prfIdParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, p)
	}
}

func deleteProfileH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		err := a.DeleteProfile(gc.Request.Context(), gc.Param(prfIdParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func getProfileDocumentH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		b, err := a.GetProfileDocument(gc.Request.Context(), gc.Param(prfIdParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Data(http.StatusOK, "application/yaml", b)
	}
}

func getLatestProfilesH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		profiles, err := a.GetLatestProfiles(gc.Request.Context())
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, profiles)
	}
}

type releasesQuery struct {
	Repository string `form:"repository"`
}

func getReleasesH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		query := releasesQuery{}
		if err := gc.ShouldBindQuery(&query); err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		releases, err := a.GetReleases(gc.Request.Context(), query.Repository)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, releases)
	}
}

func postUpdateProfilesH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		var uptReq model.UpdateRequest
		err := gc.ShouldBindJSON(&uptReq)
		if err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		jID, err := a.UpdateProfiles(gc.Request.Context(), uptReq.Repository, uptReq.Ref)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}
