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

package model

import (
	"time"

	"github.com/modularity-tools/profile-manager/util/set"
)

type ProfileMeta struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Release     int             `json:"release"`
	Arch        string          `json:"arch"`
	Description string          `json:"description"`
	Modules     set.Set[string] `json:"modules"`
	Added       time.Time       `json:"added"`
	Updated     time.Time       `json:"updated"`
}

type ProfileFilter struct {
	Name string
	Arch string
}

type UpdateRequest struct {
	Repository string `json:"repository"`
	Ref        string `json:"ref"`
}
