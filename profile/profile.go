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

// Package profile models modulemd-profile documents: per-release default
// module, stream and profile selections identified by name-version-release.arch.
package profile

import (
	"fmt"

	"github.com/modularity-tools/profile-manager/util/set"
)

// StreamProfileSet maps a stream ID to the profile names selected by default
// for that stream. An absent stream means "no override", an empty set means
// "override to nothing".
type StreamProfileSet map[string]set.Set[string]

func (s StreamProfileSet) Add(stream, profile string) {
	profiles, ok := s[stream]
	if !ok {
		profiles = make(set.Set[string])
		s[stream] = profiles
	}
	profiles[profile] = struct{}{}
}

// Set replaces the profiles of a stream with the deduplicated set built from
// the given slice. A nil slice removes the stream entry entirely.
func (s StreamProfileSet) Set(stream string, profiles []string) {
	if profiles == nil {
		delete(s, stream)
		return
	}
	s[stream] = set.New(profiles...)
}

// Canonical exports the set as a map of sorted profile name slices.
func (s StreamProfileSet) Canonical() map[string][]string {
	canonical := make(map[string][]string)
	for stream, profiles := range s {
		canonical[stream] = set.Sorted(profiles)
	}
	return canonical
}

type ModuleSelection struct {
	Name             string           `json:"name"`
	AvailableStreams set.Set[string]  `json:"available_streams"`
	DefaultStream    string           `json:"default_stream"`
	DefaultEnabled   bool             `json:"default_enabled"`
	DefaultProfiles  StreamProfileSet `json:"default_profiles"`
}

func NewModuleSelection(name string) *ModuleSelection {
	return &ModuleSelection{
		Name:             name,
		AvailableStreams: make(set.Set[string]),
		DefaultProfiles:  make(StreamProfileSet),
	}
}

type InstallationProfile struct {
	Name        string                      `json:"name"`
	Version     string                      `json:"version"`
	Release     int                         `json:"release"`
	Arch        string                      `json:"arch"`
	Description string                      `json:"description"`
	Modules     map[string]*ModuleSelection `json:"modules"`
}

func New() *InstallationProfile {
	return &InstallationProfile{Modules: make(map[string]*ModuleSelection)}
}

// ID returns the N-V-R.A identity string of the profile.
func (p *InstallationProfile) ID() string {
	return fmt.Sprintf("%s-%s-%d.%s", p.Name, p.Version, p.Release, p.Arch)
}

func (p *InstallationProfile) FileName() string {
	return p.ID() + ".modulemd.profile.yaml"
}

// AddModuleSelection upserts a selection keyed by its module name.
func (p *InstallationProfile) AddModuleSelection(selection *ModuleSelection) {
	if p.Modules == nil {
		p.Modules = make(map[string]*ModuleSelection)
	}
	p.Modules[selection.Name] = selection
}
