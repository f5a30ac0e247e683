/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Command server runs the Web Flow authentication server.
package main

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/wultra/powerauth-webflow-sub005/internal/system/config"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// configFilePath is the location of the configuration file under the home directory.
const configFilePath = "repository/conf/deployment.yaml"

// webFlowInstance holds the state shared by the commands once the configuration is loaded.
type webFlowInstance struct {
	home     string
	logLevel string
	config   *config.Config
}

func main() {
	logger := log.GetLogger()
	defer logger.Sync()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand creates the root command with the serve and migrate subcommands.
func newRootCommand() *cobra.Command {
	app := &webFlowInstance{}
	root := &cobra.Command{
		Use:          "webflow",
		Short:        "PowerAuth Web Flow authentication server",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&app.home, "home", "", "Path to the Web Flow home directory")
	root.PersistentFlags().StringVar(&app.logLevel, "log-level", "",
		"Log level overriding the "+log.LogLevelEnvironmentVariable+" environment variable")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if app.logLevel != "" {
			if err := log.SetLevel(app.logLevel); err != nil {
				return err
			}
		}
		return app.initConfigurations()
	}

	root.AddCommand(serveCommand(app))
	root.AddCommand(migrateCommand(app))
	return root
}

// initConfigurations resolves the home directory and loads the configuration from it.
func (app *webFlowInstance) initConfigurations() error {
	logger := log.GetLogger()
	if app.home == "" {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current working directory: %w", err)
		}
		app.home = dir
	} else {
		logger.Info("Using home directory from command line argument", log.String("home", app.home))
	}

	cfg, err := config.LoadConfig(path.Join(app.home, configFilePath))
	if err != nil {
		return fmt.Errorf("failed to load configurations: %w", err)
	}
	if err := config.InitializeWebFlowRuntime(app.home, cfg); err != nil {
		return fmt.Errorf("failed to initialize runtime: %w", err)
	}
	app.config = cfg
	return nil
}
