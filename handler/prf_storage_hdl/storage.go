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

package prf_storage_hdl

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/modularity-tools/profile-manager/lib/model"
	"github.com/modularity-tools/profile-manager/profile"
	"github.com/modularity-tools/profile-manager/util/set"
)

const prfDir = "profiles"

type Handler struct {
	wrkSpcPath string
	perm       fs.FileMode
	indexHdl   *indexHandler
}

func New(workspacePath string, perm fs.FileMode) (*Handler, error) {
	if !path.IsAbs(workspacePath) {
		return nil, fmt.Errorf("workspace path must be absolute")
	}
	p := path.Join(workspacePath, prfDir)
	return &Handler{
		wrkSpcPath: p,
		perm:       perm,
		indexHdl:   newIndexHandler(workspacePath, filePerm(perm)),
	}, nil
}

// filePerm derives the mode for regular files from the workspace dir mode.
func filePerm(perm fs.FileMode) fs.FileMode {
	return perm &^ 0111
}

func (h *Handler) InitWorkspace() error {
	if err := os.MkdirAll(h.wrkSpcPath, h.perm); err != nil {
		return err
	}
	return h.indexHdl.Init()
}

func (h *Handler) List(ctx context.Context, filter model.ProfileFilter) ([]model.ProfileMeta, error) {
	var pm []model.ProfileMeta
	for _, i := range h.indexHdl.List() {
		if filterItem(filter, i) {
			pm = append(pm, metaFromItem(i))
		}
		if ctx.Err() != nil {
			return nil, model.NewInternalError(ctx.Err())
		}
	}
	slices.SortFunc(pm, func(a, b model.ProfileMeta) int {
		return strings.Compare(a.ID, b.ID)
	})
	return pm, nil
}

func (h *Handler) Get(_ context.Context, id string) (*profile.InstallationProfile, error) {
	i, err := h.indexHdl.Get(id)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path.Join(h.wrkSpcPath, i.File))
	if err != nil {
		return nil, model.NewInternalError(err)
	}
	defer file.Close()
	p, err := profile.Parse(file)
	if err != nil {
		return nil, model.NewInternalError(err)
	}
	return p, nil
}

func (h *Handler) GetDocument(_ context.Context, id string) ([]byte, error) {
	i, err := h.indexHdl.Get(id)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path.Join(h.wrkSpcPath, i.File))
	if err != nil {
		return nil, model.NewInternalError(err)
	}
	return b, nil
}

func (h *Handler) Put(_ context.Context, p *profile.InstallationProfile) error {
	b, err := p.Marshal()
	if err != nil {
		return model.NewInvalidInputError(err)
	}
	fileName := p.FileName()
	if err = os.WriteFile(path.Join(h.wrkSpcPath, fileName), b, filePerm(h.perm)); err != nil {
		return model.NewInternalError(err)
	}
	modules := make(set.Set[string])
	for name := range p.Modules {
		modules[name] = struct{}{}
	}
	err = h.indexHdl.Set(item{
		ID:          p.ID(),
		File:        fileName,
		Name:        p.Name,
		Version:     p.Version,
		Release:     p.Release,
		Arch:        p.Arch,
		Description: p.Description,
		Modules:     modules,
	})
	if err != nil {
		return model.NewInternalError(err)
	}
	return nil
}

func (h *Handler) Delete(_ context.Context, id string) error {
	i, err := h.indexHdl.Get(id)
	if err != nil {
		return err
	}
	if err = os.Remove(path.Join(h.wrkSpcPath, i.File)); err != nil {
		return model.NewInternalError(err)
	}
	if err = h.indexHdl.Delete(id); err != nil {
		return model.NewInternalError(err)
	}
	return nil
}

func metaFromItem(i item) model.ProfileMeta {
	return model.ProfileMeta{
		ID:          i.ID,
		Name:        i.Name,
		Version:     i.Version,
		Release:     i.Release,
		Arch:        i.Arch,
		Description: i.Description,
		Modules:     i.Modules,
		Added:       i.Added,
		Updated:     i.Updated,
	}
}

func filterItem(filter model.ProfileFilter, i item) bool {
	if filter.Name != "" {
		if i.Name != filter.Name {
			return false
		}
	}
	if filter.Arch != "" {
		if i.Arch != filter.Arch {
			return false
		}
	}
	return true
}
