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
	"reflect"
	"testing"
)

func TestStreamProfileSet_Add(t *testing.T) {
	s := make(StreamProfileSet)
	s.Add("f26", "server")
	s.Add("f26", "container")
	s.Add("f26", "server")
	a := map[string][]string{"f26": {"container", "server"}}
	if b := s.Canonical(); reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
}

func TestStreamProfileSet_Set(t *testing.T) {
	s := make(StreamProfileSet)
	s.Add("f26", "server")
	s.Set("f26", []string{"client", "client", "server"})
	a := map[string][]string{"f26": {"client", "server"}}
	if b := s.Canonical(); reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
	s.Set("f26", []string{})
	a = map[string][]string{"f26": {}}
	if b := s.Canonical(); reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
	s.Set("f26", nil)
	a = map[string][]string{}
	if b := s.Canonical(); reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
}

func TestInstallationProfile_ID(t *testing.T) {
	p := New()
	p.Name = "fedora-server"
	p.Version = "26.1"
	p.Release = 2
	p.Arch = "x86_64"
	a := "fedora-server-26.1-2.x86_64"
	if b := p.ID(); a != b {
		t.Errorf("%s != %s", a, b)
	}
	a = "fedora-server-26.1-2.x86_64.modulemd.profile.yaml"
	if b := p.FileName(); a != b {
		t.Errorf("%s != %s", a, b)
	}
}

func TestInstallationProfile_AddModuleSelection(t *testing.T) {
	p := New()
	ms := NewModuleSelection("base-runtime")
	ms.DefaultStream = "f26"
	p.AddModuleSelection(ms)
	ms2 := NewModuleSelection("base-runtime")
	ms2.DefaultStream = "f27"
	p.AddModuleSelection(ms2)
	if len(p.Modules) != 1 {
		t.Error("len(p.Modules) != 1")
	}
	if p.Modules["base-runtime"].DefaultStream != "f27" {
		t.Error("upsert did not overwrite")
	}
}

func TestNewModuleSelection(t *testing.T) {
	a := NewModuleSelection("base-runtime")
	b := NewModuleSelection("base-runtime")
	a.AvailableStreams["f26"] = struct{}{}
	a.DefaultProfiles.Add("f26", "server")
	if len(b.AvailableStreams) != 0 {
		t.Error("shared available streams container")
	}
	if len(b.DefaultProfiles) != 0 {
		t.Error("shared default profiles container")
	}
}
