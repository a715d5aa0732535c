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
	"slices"
	"strconv"
	"strings"
)

// SplitVersion parses the version string into its dot-separated integer
// components.
func (p *InstallationProfile) SplitVersion() ([]int, error) {
	parts := strings.Split(p.Version, ".")
	splitVersion := make([]int, 0, len(parts))
	for _, part := range parts {
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, NewFormatError("version component '"+part+"'", err)
		}
		splitVersion = append(splitVersion, i)
	}
	return splitVersion, nil
}

// Compare orders two profiles of the same release family by version, then
// release. It returns -1, 0 or 1 and fails with a NameMismatchError if the
// names differ. A version that extends another ("26.1" vs "26") is greater.
func (p *InstallationProfile) Compare(other *InstallationProfile) (int, error) {
	if p.Name != other.Name {
		return 0, NewNameMismatchError(p.Name, other.Name)
	}
	a, err := p.SplitVersion()
	if err != nil {
		return 0, err
	}
	b, err := other.SplitVersion()
	if err != nil {
		return 0, err
	}
	if res := slices.Compare(a, b); res != 0 {
		return res, nil
	}
	if p.Release < other.Release {
		return -1, nil
	}
	if p.Release > other.Release {
		return 1, nil
	}
	return 0, nil
}

func (p *InstallationProfile) Less(other *InstallationProfile) (bool, error) {
	res, err := p.Compare(other)
	if err != nil {
		return false, err
	}
	return res < 0, nil
}

func (p *InstallationProfile) Equal(other *InstallationProfile) (bool, error) {
	res, err := p.Compare(other)
	if err != nil {
		return false, err
	}
	return res == 0, nil
}
