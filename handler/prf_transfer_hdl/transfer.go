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

package prf_transfer_hdl

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/modularity-tools/profile-manager/lib/model"
	"github.com/modularity-tools/profile-manager/util/dir_fs"
)

type Handler struct {
	wrkSpcPath  string
	perm        fs.FileMode
	httpTimeout time.Duration
}

func New(workspacePath string, perm fs.FileMode, httpTimeout time.Duration) (*Handler, error) {
	if !path.IsAbs(workspacePath) {
		return nil, fmt.Errorf("workspace path must be absolute")
	}
	return &Handler{
		wrkSpcPath:  workspacePath,
		perm:        perm,
		httpTimeout: httpTimeout,
	}, nil
}

func (h *Handler) InitWorkspace() error {
	if err := os.MkdirAll(h.wrkSpcPath, h.perm); err != nil {
		return err
	}
	return nil
}

func (h *Handler) ListReleases(ctx context.Context, repository string) ([]string, error) {
	dir, err := os.MkdirTemp(h.wrkSpcPath, "list_")
	if err != nil {
		return nil, model.NewInternalError(err)
	}
	defer os.RemoveAll(dir)
	ctxWt, cf := context.WithTimeout(ctx, h.httpTimeout)
	defer cf()
	repo, err := git.PlainCloneContext(ctxWt, dir, false, &git.CloneOptions{
		URL:               repoURL(repository),
		NoCheckout:        true,
		RecurseSubmodules: git.NoRecurseSubmodules,
		Tags:              git.AllTags,
	})
	if err != nil {
		return nil, model.NewInternalError(err)
	}
	iter, err := repo.Tags()
	if err != nil {
		return nil, model.NewInternalError(err)
	}
	defer iter.Close()
	var releases []string
	for {
		ref, err := iter.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, model.NewInternalError(err)
		}
		releases = append(releases, ref.Name().Short())
	}
	return releases, nil
}

func (h *Handler) Get(ctx context.Context, repository, ref string) (dir dir_fs.DirFS, err error) {
	tDir, err := os.MkdirTemp(h.wrkSpcPath, "clone_")
	if err != nil {
		return "", model.NewInternalError(err)
	}
	defer func() {
		if err != nil {
			os.RemoveAll(tDir)
		}
	}()
	opt := &git.CloneOptions{
		URL:               repoURL(repository),
		SingleBranch:      true,
		Depth:             1,
		RecurseSubmodules: git.NoRecurseSubmodules,
		Tags:              git.NoTags,
	}
	if ref != "" {
		opt.ReferenceName = plumbing.NewTagReferenceName(ref)
	}
	ctxWt, cf := context.WithTimeout(ctx, h.httpTimeout)
	defer cf()
	_, err = git.PlainCloneContext(ctxWt, tDir, false, opt)
	if err != nil {
		return "", model.NewInternalError(err)
	}
	err = os.RemoveAll(path.Join(tDir, ".git"))
	if err != nil {
		return "", model.NewInternalError(err)
	}
	dir, err = dir_fs.New(tDir)
	if err != nil {
		return "", model.NewInternalError(err)
	}
	return dir, nil
}

func repoURL(repository string) string {
	if strings.Contains(repository, "://") {
		return repository
	}
	return "https://" + repository + ".git"
}
