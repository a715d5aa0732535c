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

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/SENERGY-Platform/go-cc-job-handler/ccjh"
	"github.com/SENERGY-Platform/go-service-base/srv-base"
	srv_base_types "github.com/SENERGY-Platform/go-service-base/srv-base/types"
	"github.com/modularity-tools/profile-manager/api"
	"github.com/modularity-tools/profile-manager/handler/http_hdl"
	"github.com/modularity-tools/profile-manager/handler/job_hdl"
	"github.com/modularity-tools/profile-manager/handler/prf_storage_hdl"
	"github.com/modularity-tools/profile-manager/handler/prf_transfer_hdl"
	"github.com/modularity-tools/profile-manager/lib/model"
	"github.com/modularity-tools/profile-manager/util"
)

var version string

func main() {
	srv_base.PrintInfo(model.ServiceName, version)

	flags := util.NewFlags()

	config, err := util.NewConfig(flags.ConfPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logFile, err := srv_base.InitLogger(config.Logger)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		var logFileError *srv_base.LogFileError
		if errors.As(err, &logFileError) {
			os.Exit(1)
		}
	}
	if logFile != nil {
		defer logFile.Close()
	}

	srv_base.Logger.Debugf("config: %s", srv_base.ToJsonStr(config))

	prfStorageHandler, err := prf_storage_hdl.New(config.PrfStorageHandler.WorkdirPath, 0770)
	if err != nil {
		srv_base.Logger.Error(err)
		return
	}
	if err = prfStorageHandler.InitWorkspace(); err != nil {
		srv_base.Logger.Error(err)
		return
	}

	prfTransferHandler, err := prf_transfer_hdl.New(config.PrfTransferHandler.WorkdirPath, 0770, time.Duration(config.PrfTransferHandler.Timeout))
	if err != nil {
		srv_base.Logger.Error(err)
		return
	}
	if err = prfTransferHandler.InitWorkspace(); err != nil {
		srv_base.Logger.Error(err)
		return
	}

	ccHandler := ccjh.New(config.Jobs.BufferSize)
	defer ccHandler.Stop()

	jobCtx, jobCF := context.WithCancel(context.Background())
	defer jobCF()

	jobHandler := job_hdl.New(jobCtx, ccHandler)

	purgeCtx, purgeCF := context.WithCancel(context.Background())
	defer purgeCF()
	go func() {
		ticker := time.NewTicker(time.Duration(config.Jobs.PJHInterval) * time.Microsecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := jobHandler.PurgeJobs(config.Jobs.MaxAge); n > 0 {
					srv_base.Logger.Debugf("purged %d jobs", n)
				}
			case <-purgeCtx.Done():
				return
			}
		}
	}()

	mApi := api.New(prfStorageHandler, prfTransferHandler, jobHandler, config.PrfTransferHandler.Repository)

	httpHandler := http_hdl.New(mApi, map[string]string{
		model.HeaderApiVer:  version,
		model.HeaderSrvName: model.ServiceName,
	})

	err = ccHandler.RunAsync(config.Jobs.MaxNumber, time.Duration(config.Jobs.CCHInterval)*time.Microsecond)
	if err != nil {
		srv_base.Logger.Error(err)
		return
	}

	listener, err := net.Listen("tcp", ":"+strconv.FormatInt(int64(config.ServerPort), 10))
	if err != nil {
		srv_base.Logger.Error(err)
		return
	}
	srv_base.StartServer(&http.Server{Handler: httpHandler}, listener, srv_base_types.DefaultShutdownSignals)
}
