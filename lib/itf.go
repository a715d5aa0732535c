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

package lib

import (
	"context"
	"io"

	"github.com/modularity-tools/profile-manager/lib/model"
	"github.com/modularity-tools/profile-manager/profile"
)

type Api interface {
	GetProfiles(ctx context.Context, filter model.ProfileFilter) ([]model.ProfileMeta, error)
	GetProfile(ctx context.Context, id string) (*profile.InstallationProfile, error)
	GetProfileDocument(ctx context.Context, id string) ([]byte, error)
	GetLatestProfiles(ctx context.Context) (map[string]model.ProfileMeta, error)
	AddProfiles(ctx context.Context, source io.Reader) ([]string, error)
	DeleteProfile(ctx context.Context, id string) error
	UpdateProfiles(ctx context.Context, repository, ref string) (string, error)
	GetReleases(ctx context.Context, repository string) ([]string, error)
	GetJobs(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	GetJob(ctx context.Context, id string) (model.Job, error)
	CancelJob(ctx context.Context, id string) error
}
