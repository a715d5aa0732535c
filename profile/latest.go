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

// LatestByName reduces the given profiles to the greatest member per release
// family. On a version and release tie the earliest input profile wins.
func LatestByName(profiles []*InstallationProfile) (map[string]*InstallationProfile, error) {
	latest := make(map[string]*InstallationProfile)
	for _, p := range profiles {
		current, ok := latest[p.Name]
		if !ok {
			latest[p.Name] = p
			continue
		}
		res, err := p.Compare(current)
		if err != nil {
			return nil, err
		}
		if res > 0 {
			latest[p.Name] = p
		}
	}
	return latest, nil
}

// Latest returns the values of LatestByName in no particular order.
func Latest(profiles []*InstallationProfile) ([]*InstallationProfile, error) {
	byName, err := LatestByName(profiles)
	if err != nil {
		return nil, err
	}
	var latest []*InstallationProfile
	for _, p := range byName {
		latest = append(latest, p)
	}
	return latest, nil
}
