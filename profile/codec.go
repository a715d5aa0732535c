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

package profile

import (
	"errors"
	"io"
	"strconv"

	"github.com/modularity-tools/profile-manager/util/set"
	"gopkg.in/yaml.v3"
)

const (
	DocumentType  = "modulemd-profile"
	FormatVersion = 0
)

type moduleDoc struct {
	AvailableStreams []string            `yaml:"available-streams"`
	Default          bool                `yaml:"default"`
	DefaultStream    string              `yaml:"default-stream"`
	DefaultProfiles  map[string][]string `yaml:"default-profiles"`
}

type dataDoc struct {
	Name        string               `yaml:"name"`
	Version     string               `yaml:"version"`
	Release     int                  `yaml:"release"`
	Arch        string               `yaml:"arch"`
	Description string               `yaml:"description"`
	Modules     map[string]moduleDoc `yaml:"modules"`
}

type document struct {
	Document string  `yaml:"document"`
	Version  int     `yaml:"version"`
	Data     dataDoc `yaml:"data"`
}

// Marshal serializes the profile as a canonical modulemd-profile document.
// Stream and profile name lists are sorted and deduplicated, map keys are
// emitted in sorted order, so equal profiles serialize to identical bytes.
// Fails with a ConsistencyError if a module selection's default stream is
// empty or not among its available streams.
func (p *InstallationProfile) Marshal() ([]byte, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func (p *InstallationProfile) document() (document, error) {
	modules := make(map[string]moduleDoc)
	for name, selection := range p.Modules {
		md, err := selection.document()
		if err != nil {
			return document{}, err
		}
		modules[name] = md
	}
	return document{
		Document: DocumentType,
		Version:  FormatVersion,
		Data: dataDoc{
			Name:        p.Name,
			Version:     p.Version,
			Release:     p.Release,
			Arch:        p.Arch,
			Description: p.Description,
			Modules:     modules,
		},
	}, nil
}

func (m *ModuleSelection) document() (moduleDoc, error) {
	if m.DefaultStream == "" {
		return moduleDoc{}, NewConsistencyError(m.Name, m.DefaultStream)
	}
	if _, ok := m.AvailableStreams[m.DefaultStream]; !ok {
		return moduleDoc{}, NewConsistencyError(m.Name, m.DefaultStream)
	}
	return moduleDoc{
		AvailableStreams: set.Sorted(m.AvailableStreams),
		Default:          m.DefaultEnabled,
		DefaultStream:    m.DefaultStream,
		DefaultProfiles:  m.DefaultProfiles.Canonical(),
	}, nil
}

type moduleDocIn struct {
	AvailableStreams *[]string            `yaml:"available-streams"`
	Default          *bool                `yaml:"default"`
	DefaultStream    *string              `yaml:"default-stream"`
	DefaultProfiles  *map[string][]string `yaml:"default-profiles"`
}

type dataDocIn struct {
	Name        *string                 `yaml:"name"`
	Version     *string                 `yaml:"version"`
	Release     *string                 `yaml:"release"`
	Arch        *string                 `yaml:"arch"`
	Description *string                 `yaml:"description"`
	Modules     *map[string]moduleDocIn `yaml:"modules"`
}

type documentIn struct {
	Data *dataDocIn `yaml:"data"`
}

// Parse reads a single modulemd-profile document. Loading is permissive: the
// default stream of a module selection is not checked against its available
// streams until Marshal.
func Parse(r io.Reader) (*InstallationProfile, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		return nil, NewStructureError("decoding document failed", err)
	}
	return fromNode(&node)
}

// ParseAll reads a multi-document stream in document order. The first
// malformed document aborts the whole call.
func ParseAll(r io.Reader) ([]*InstallationProfile, error) {
	decoder := yaml.NewDecoder(r)
	var profiles []*InstallationProfile
	for {
		var node yaml.Node
		err := decoder.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, NewStructureError("decoding document failed", err)
		}
		p, err := fromNode(&node)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func fromNode(node *yaml.Node) (*InstallationProfile, error) {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, NewStructureError("document is not a mapping", nil)
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, NewStructureError("document is not a mapping", nil)
	}
	var doc documentIn
	if err := node.Decode(&doc); err != nil {
		return nil, NewStructureError("decoding document failed", err)
	}
	return doc.profile()
}

func (d *documentIn) profile() (*InstallationProfile, error) {
	data := d.Data
	if data == nil {
		return nil, NewStructureError("missing key 'data'", nil)
	}
	if data.Name == nil {
		return nil, NewStructureError("missing key 'name' in data block", nil)
	}
	if data.Version == nil {
		return nil, NewStructureError("missing key 'version' in data block", nil)
	}
	if data.Release == nil {
		return nil, NewStructureError("missing key 'release' in data block", nil)
	}
	if data.Arch == nil {
		return nil, NewStructureError("missing key 'arch' in data block", nil)
	}
	if data.Description == nil {
		return nil, NewStructureError("missing key 'description' in data block", nil)
	}
	if data.Modules == nil {
		return nil, NewStructureError("missing key 'modules' in data block", nil)
	}
	release, err := strconv.Atoi(*data.Release)
	if err != nil {
		return nil, NewFormatError("release", err)
	}
	p := New()
	p.Name = *data.Name
	p.Version = *data.Version
	p.Release = release
	p.Arch = *data.Arch
	p.Description = *data.Description
	for name, md := range *data.Modules {
		selection, err := md.selection(name)
		if err != nil {
			return nil, err
		}
		p.AddModuleSelection(selection)
	}
	return p, nil
}

func (m *moduleDocIn) selection(name string) (*ModuleSelection, error) {
	if m.AvailableStreams == nil {
		return nil, NewStructureError("missing key 'available-streams' in module '"+name+"'", nil)
	}
	if m.Default == nil {
		return nil, NewStructureError("missing key 'default' in module '"+name+"'", nil)
	}
	if m.DefaultStream == nil {
		return nil, NewStructureError("missing key 'default-stream' in module '"+name+"'", nil)
	}
	if m.DefaultProfiles == nil {
		return nil, NewStructureError("missing key 'default-profiles' in module '"+name+"'", nil)
	}
	selection := NewModuleSelection(name)
	selection.AvailableStreams = set.New(*m.AvailableStreams...)
	selection.DefaultStream = *m.DefaultStream
	selection.DefaultEnabled = *m.Default
	for stream, profiles := range *m.DefaultProfiles {
		if profiles == nil {
			profiles = []string{}
		}
		selection.DefaultProfiles.Set(stream, profiles)
	}
	return selection, nil
}
