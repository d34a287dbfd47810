/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/roadmapper/internal/config"
	"github.com/spf13/viper"
)

var (
	configListenersMu sync.Mutex
	configListeners   []func(fsnotify.Event)
)

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// It's okay if .env doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(config.EnvPrefix)                   // e.g., ROADMAPPER_LLM_PROVIDER
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // llm.provider -> LLM_PROVIDER
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		for _, p := range config.ConfigSearchPaths() {
			viper.AddConfigPath(p)
		}
		viper.SetConfigName(config.ConfigName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No config file: defaults and environment only.
		case cfgFile != "":
			fmt.Fprintln(os.Stderr, "Error: could not read config file:", cfgFile, "-", err)
		default:
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
		return
	}

	viper.OnConfigChange(notifyConfigChange)
	viper.WatchConfig()
}

// onConfigChange registers fn to run whenever the watched config file changes.
func onConfigChange(fn func(fsnotify.Event)) {
	configListenersMu.Lock()
	defer configListenersMu.Unlock()
	configListeners = append(configListeners, fn)
}

func notifyConfigChange(e fsnotify.Event) {
	configListenersMu.Lock()
	listeners := append([]func(fsnotify.Event){}, configListeners...)
	configListenersMu.Unlock()

	for _, fn := range listeners {
		fn(e)
	}
}
