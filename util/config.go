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

package util

import (
	"github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/y-du/go-log-level/level"
)

type PrfStorageHandlerConfig struct {
	WorkdirPath string `json:"workdir_path" env_var:"PSH_WORKDIR_PATH"`
}

type PrfTransferHandlerConfig struct {
	WorkdirPath string `json:"workdir_path" env_var:"PTH_WORKDIR_PATH"`
	Timeout     int64  `json:"timeout" env_var:"PTH_TIMEOUT"`
	Repository  string `json:"repository" env_var:"PTH_REPOSITORY"`
}

type JobsConfig struct {
	BufferSize  int   `json:"buffer_size" env_var:"JOBS_BUFFER_SIZE"`
	MaxNumber   int   `json:"max_number" env_var:"JOBS_MAX_NUMBER"`
	CCHInterval int   `json:"cch_interval" env_var:"JOBS_CCH_INTERVAL"`
	PJHInterval int   `json:"pjh_interval" env_var:"JOBS_PJH_INTERVAL"`
	MaxAge      int64 `json:"max_age" env_var:"JOBS_MAX_AGE"`
}

type Config struct {
	ServerPort         uint                     `json:"server_port" env_var:"SERVER_PORT"`
	PrfStorageHandler  PrfStorageHandlerConfig  `json:"profile_storage_handler" env_var:"PSH_CONFIG"`
	PrfTransferHandler PrfTransferHandlerConfig `json:"profile_transfer_handler" env_var:"PTH_CONFIG"`
	Jobs               JobsConfig               `json:"jobs" env_var:"JOBS_CONFIG"`
	Logger             srv_base.LoggerConfig    `json:"logger" env_var:"LOGGER_CONFIG"`
}

func NewConfig(path *string) (*Config, error) {
	cfg := Config{
		ServerPort: 80,
		PrfStorageHandler: PrfStorageHandlerConfig{
			WorkdirPath: "/opt/profile-manager/profiles",
		},
		PrfTransferHandler: PrfTransferHandlerConfig{
			WorkdirPath: "/opt/profile-manager/transfer",
			Timeout:     30000000000,
		},
		Jobs: JobsConfig{
			BufferSize:  50,
			MaxNumber:   10,
			CCHInterval: 500000,
			PJHInterval: 500000,
			MaxAge:      3600000000,
		},
		Logger: srv_base.LoggerConfig{
			Level:        level.Warning,
			Utc:          true,
			Microseconds: true,
			Terminal:     true,
		},
	}
	err := srv_base.LoadConfig(path, &cfg, nil, nil, nil)
	return &cfg, err
}
