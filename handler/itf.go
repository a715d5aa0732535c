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

package handler

import (
	"context"

	"github.com/modularity-tools/profile-manager/lib/model"
	"github.com/modularity-tools/profile-manager/profile"
	"github.com/modularity-tools/profile-manager/util/dir_fs"
)

type PrfStorageHandler interface {
	List(ctx context.Context, filter model.ProfileFilter) ([]model.ProfileMeta, error)
	Get(ctx context.Context, id string) (*profile.InstallationProfile, error)
	GetDocument(ctx context.Context, id string) ([]byte, error)
	Put(ctx context.Context, p *profile.InstallationProfile) error
	Delete(ctx context.Context, id string) error
}

type PrfTransferHandler interface {
	ListReleases(ctx context.Context, repository string) ([]string, error)
	Get(ctx context.Context, repository, ref string) (dir_fs.DirFS, error)
}

type JobHandler interface {
	Create(desc string, tFunc func(context.Context, context.CancelFunc) error) (string, error)
	Get(id string) (model.Job, error)
	Cancel(id string) error
	List(filter model.JobFilter) []model.Job
	PurgeJobs(maxAge int64) int
}
