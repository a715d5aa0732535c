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
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/modularity-tools/profile-manager/util/set"
)

func newFedoraServerProfile() *InstallationProfile {
	p := New()
	p.Name = "fedora-server"
	p.Version = "26"
	p.Release = 5
	p.Arch = "x86_64"
	p.Description = "Fedora 26 Server"

	baseRuntime := NewModuleSelection("base-runtime")
	baseRuntime.AvailableStreams = set.New("f26", "f27", "rawhide")
	baseRuntime.DefaultStream = "f26"
	baseRuntime.DefaultEnabled = true
	baseRuntime.DefaultProfiles.Add("f26", "buildroot")
	baseRuntime.DefaultProfiles.Add("f26", "container")
	baseRuntime.DefaultProfiles.Set("f27", []string{})
	p.AddModuleSelection(baseRuntime)

	httpd := NewModuleSelection("httpd")
	httpd.AvailableStreams = set.New("2.2", "2.4")
	httpd.DefaultStream = "2.4"
	p.AddModuleSelection(httpd)

	postgresql := NewModuleSelection("postgresql")
	postgresql.AvailableStreams = set.New("9.6")
	postgresql.DefaultStream = "9.6"
	postgresql.DefaultProfiles.Set("9.6", []string{"server", "client"})
	p.AddModuleSelection(postgresql)
	return p
}

func TestInstallationProfile_Marshal_RoundTrip(t *testing.T) {
	a := newFedoraServerProfile()
	b1, err := a.Marshal()
	if err != nil {
		t.Fatalf("err != nil: %s", err)
	}
	b, err := Parse(bytes.NewReader(b1))
	if err != nil {
		t.Fatalf("err != nil: %s", err)
	}
	if reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
	b2, err := b.Marshal()
	if err != nil {
		t.Fatalf("err != nil: %s", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Errorf("serialization not stable:\n%s\n!=\n%s", b1, b2)
	}
}

func TestInstallationProfile_Marshal_Canonical(t *testing.T) {
	a := newFedoraServerProfile()
	b := newFedoraServerProfile()
	b.Modules["base-runtime"].AvailableStreams = set.New("rawhide", "f27", "f26", "f26")
	b.Modules["base-runtime"].DefaultProfiles.Set("f26", []string{"container", "buildroot"})
	ba, err := a.Marshal()
	if err != nil {
		t.Fatalf("err != nil: %s", err)
	}
	bb, err := b.Marshal()
	if err != nil {
		t.Fatalf("err != nil: %s", err)
	}
	if !bytes.Equal(ba, bb) {
		t.Errorf("insertion order leaked into output:\n%s\n!=\n%s", ba, bb)
	}
}

func TestInstallationProfile_Marshal_Consistency(t *testing.T) {
	var ce *ConsistencyError
	p := newFedoraServerProfile()
	p.Modules["httpd"].DefaultStream = "2.6"
	if _, err := p.Marshal(); err == nil {
		t.Error("err == nil")
	} else if !errors.As(err, &ce) {
		t.Errorf("unexpected error type: %v", err)
	}
	p.Modules["httpd"].DefaultStream = ""
	if _, err := p.Marshal(); err == nil {
		t.Error("err == nil")
	} else if !errors.As(err, &ce) {
		t.Errorf("unexpected error type: %v", err)
	}
}

const testDoc = `document: modulemd-profile
version: 0
data:
  name: fedora-server
  version: '26'
  release: 5
  arch: x86_64
  description: Fedora 26 Server
  modules:
    httpd:
      available-streams: ['2.2', '2.4']
      default: false
      default-stream: '2.4'
      default-profiles: {}
`

func TestParse(t *testing.T) {
	p, err := Parse(strings.NewReader(testDoc))
	if err != nil {
		t.Fatalf("err != nil: %s", err)
	}
	if p.ID() != "fedora-server-26-5.x86_64" {
		t.Errorf("unexpected id: %s", p.ID())
	}
	if p.Release != 5 {
		t.Errorf("release: %d != 5", p.Release)
	}
	httpd, ok := p.Modules["httpd"]
	if !ok {
		t.Fatal("missing module 'httpd'")
	}
	if a := set.New("2.2", "2.4"); reflect.DeepEqual(a, httpd.AvailableStreams) == false {
		t.Errorf("%v != %v", a, httpd.AvailableStreams)
	}
	if httpd.DefaultEnabled {
		t.Error("default enabled")
	}
}

func TestParse_Permissive(t *testing.T) {
	doc := strings.Replace(testDoc, "default-stream: '2.4'", "default-stream: '2.6'", 1)
	p, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("err != nil: %s", err)
	}
	var ce *ConsistencyError
	if _, err = p.Marshal(); err == nil {
		t.Error("err == nil")
	} else if !errors.As(err, &ce) {
		t.Errorf("unexpected error type: %v", err)
	}
}

func TestParse_NotMapping(t *testing.T) {
	var se *StructureError
	for _, doc := range []string{"- a\n- b\n", "test\n"} {
		if _, err := Parse(strings.NewReader(doc)); err == nil {
			t.Error("err == nil")
		} else if !errors.As(err, &se) {
			t.Errorf("unexpected error type: %v", err)
		}
	}
}

func TestParse_MissingKey(t *testing.T) {
	var se *StructureError
	doc := strings.Replace(testDoc, "  release: 5\n", "", 1)
	if _, err := Parse(strings.NewReader(doc)); err == nil {
		t.Error("err == nil")
	} else if !errors.As(err, &se) {
		t.Errorf("unexpected error type: %v", err)
	}
	doc = strings.Replace(testDoc, "      default: false\n", "", 1)
	if _, err := Parse(strings.NewReader(doc)); err == nil {
		t.Error("err == nil")
	} else if !errors.As(err, &se) {
		t.Errorf("unexpected error type: %v", err)
	}
}

func TestParse_ReleaseCoercion(t *testing.T) {
	doc := strings.Replace(testDoc, "release: 5", "release: '5'", 1)
	p, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("err != nil: %s", err)
	}
	if p.Release != 5 {
		t.Errorf("release: %d != 5", p.Release)
	}
	var fe *FormatError
	doc = strings.Replace(testDoc, "release: 5", "release: latest", 1)
	if _, err = Parse(strings.NewReader(doc)); err == nil {
		t.Error("err == nil")
	} else if !errors.As(err, &fe) {
		t.Errorf("unexpected error type: %v", err)
	}
}

func TestParse_ProfileOverrides(t *testing.T) {
	doc := strings.Replace(testDoc, "default-profiles: {}", "default-profiles:\n        '2.4': []", 1)
	p, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("err != nil: %s", err)
	}
	a := map[string][]string{"2.4": {}}
	if b := p.Modules["httpd"].DefaultProfiles.Canonical(); reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
}

func TestParseAll(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(testDoc)
	sb.WriteString("---\n")
	sb.WriteString(strings.Replace(testDoc, "release: 5", "release: 6", 1))
	profiles, err := ParseAll(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("err != nil: %s", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("len(profiles) != 2: %d", len(profiles))
	}
	if profiles[0].Release != 5 || profiles[1].Release != 6 {
		t.Errorf("document order not preserved: %d, %d", profiles[0].Release, profiles[1].Release)
	}
}

func TestParseAll_Malformed(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(testDoc)
	sb.WriteString("---\ntest\n")
	if _, err := ParseAll(strings.NewReader(sb.String())); err == nil {
		t.Error("err == nil")
	}
}
