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

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/modularity-tools/profile-manager/lib/model"
	"github.com/modularity-tools/profile-manager/profile"
)

const documentSuffix = ".modulemd.profile.yaml"

func (a *Api) GetProfiles(ctx context.Context, filter model.ProfileFilter) ([]model.ProfileMeta, error) {
	return a.prfStorageHandler.List(ctx, filter)
}

func (a *Api) GetProfile(ctx context.Context, id string) (*profile.InstallationProfile, error) {
	return a.prfStorageHandler.Get(ctx, id)
}

func (a *Api) GetProfileDocument(ctx context.Context, id string) ([]byte, error) {
	return a.prfStorageHandler.GetDocument(ctx, id)
}

func (a *Api) GetLatestProfiles(ctx context.Context) (map[string]model.ProfileMeta, error) {
	metaList, err := a.prfStorageHandler.List(ctx, model.ProfileFilter{})
	if err != nil {
		return nil, err
	}
	metaMap := make(map[string]model.ProfileMeta)
	var profiles []*profile.InstallationProfile
	for _, meta := range metaList {
		p, err := a.prfStorageHandler.Get(ctx, meta.ID)
		if err != nil {
			return nil, err
		}
		metaMap[p.ID()] = meta
		profiles = append(profiles, p)
	}
	latest, err := profile.LatestByName(profiles)
	if err != nil {
		return nil, model.NewInternalError(err)
	}
	latestMeta := make(map[string]model.ProfileMeta)
	for name, p := range latest {
		latestMeta[name] = metaMap[p.ID()]
	}
	return latestMeta, nil
}

func (a *Api) AddProfiles(ctx context.Context, source io.Reader) ([]string, error) {
	profiles, err := profile.ParseAll(source)
	if err != nil {
		return nil, model.NewInvalidInputError(err)
	}
	var ids []string
	for _, p := range profiles {
		if err = a.prfStorageHandler.Put(ctx, p); err != nil {
			return ids, err
		}
		ids = append(ids, p.ID())
	}
	return ids, nil
}

func (a *Api) DeleteProfile(ctx context.Context, id string) error {
	return a.prfStorageHandler.Delete(ctx, id)
}

func (a *Api) UpdateProfiles(_ context.Context, repository, ref string) (string, error) {
	repository, err := a.repository(repository)
	if err != nil {
		return "", err
	}
	return a.jobHandler.Create(fmt.Sprintf("update profiles from '%s'", repository), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.updateProfiles(ctx, repository, ref)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) GetReleases(ctx context.Context, repository string) ([]string, error) {
	repository, err := a.repository(repository)
	if err != nil {
		return nil, err
	}
	return a.prfTransferHandler.ListReleases(ctx, repository)
}

func (a *Api) repository(repository string) (string, error) {
	if repository == "" {
		repository = a.defaultRepository
	}
	if repository == "" {
		return "", model.NewInvalidInputError(errors.New("no repository given"))
	}
	return repository, nil
}

func (a *Api) updateProfiles(ctx context.Context, repository, ref string) error {
	dir, err := a.prfTransferHandler.Get(ctx, repository, ref)
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir.Path())
	var count int
	err = fs.WalkDir(dir, ".", func(pth string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), documentSuffix) {
			return nil
		}
		file, err := dir.Open(pth)
		if err != nil {
			return err
		}
		defer file.Close()
		profiles, err := profile.ParseAll(file)
		if err != nil {
			return fmt.Errorf("parsing '%s': %w", pth, err)
		}
		for _, p := range profiles {
			if err = a.prfStorageHandler.Put(ctx, p); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return err
	}
	srv_base.Logger.Infof("updated %d profiles from '%s'", count, repository)
	return nil
}
