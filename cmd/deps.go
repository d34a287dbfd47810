/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/josephgoksu/roadmapper/internal/config"
	"github.com/josephgoksu/roadmapper/internal/llm"
	"github.com/josephgoksu/roadmapper/internal/logger"
	"github.com/josephgoksu/roadmapper/internal/roadmap"
	"github.com/josephgoksu/roadmapper/internal/telemetry"
	"github.com/spf13/afero"
)

// Swapped in tests.
var (
	appFs            afero.Fs = afero.NewOsFs()
	newTextGenerator          = llm.NewTextGenerator
)

// appDeps bundles what every roadmap command needs.
type appDeps struct {
	settings  config.Settings
	log       *logger.Logger
	telemetry telemetry.Client
	generator *reloadingRequester
}

// loadDeps resolves settings and builds the logger, telemetry client and
// requester for command. Interactive sessions log to a file because the TUI
// owns the terminal.
func loadDeps(ctx context.Context, command string, logToFile bool) (*appDeps, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logFile := ""
	if logToFile {
		logFile = settings.Log.File
	}
	log, err := logger.New(logger.Options{Level: settings.Log.Level, File: logFile})
	if err != nil {
		return nil, err
	}
	logger.SetVersion(version)
	logger.SetCommand(command)
	logger.SetCrashLogger(log)

	tracker, err := telemetry.New(telemetry.ClientConfig{
		APIKey:   settings.Telemetry.APIKey,
		Endpoint: settings.Telemetry.Endpoint,
		Version:  version,
		Config:   telemetry.NewSessionConfig(settings.Telemetry.Enabled),
	})
	if err != nil {
		log.Warn("telemetry disabled", "error", err)
		tracker = telemetry.NewNoopClient()
	}
	tracker.Track(telemetry.EventCommandExecuted, telemetry.Properties{"command": command})

	gen, err := newReloadingRequester(ctx, settings, log, tracker)
	if err != nil {
		_ = tracker.Close()
		return nil, err
	}
	onConfigChange(gen.configChanged)

	return &appDeps{
		settings:  settings,
		log:       log,
		telemetry: tracker,
		generator: gen,
	}, nil
}

// Close flushes telemetry and the log.
func (d *appDeps) Close() {
	_ = d.telemetry.Close()
	d.log.Sync()
}

// buildRequester wires a provider client and prompt into a Requester.
func buildRequester(ctx context.Context, settings config.Settings, log *logger.Logger, tracker telemetry.Client) (*roadmap.Requester, error) {
	gen, err := newTextGenerator(ctx, settings.LLM)
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", settings.LLM.Provider, err)
	}

	prompt, err := roadmap.LoadPrompt(appFs, settings.Roadmap.PromptTemplate)
	if err != nil {
		return nil, err
	}

	return roadmap.NewRequester(roadmap.Options{
		Generator: gen,
		Prompt:    prompt,
		Provider:  string(settings.LLM.Provider),
		Model:     settings.LLM.Model,
		Strict:    settings.Roadmap.Strict,
		Logger:    log,
		Telemetry: tracker,
	})
}

// reloadingRequester serves requests from the current Requester and rebuilds
// it from fresh settings after the config file changes. A rebuild failure
// keeps the previous Requester.
type reloadingRequester struct {
	mu      sync.Mutex
	ctx     context.Context
	current *roadmap.Requester
	stale   bool
	log     *logger.Logger
	tracker telemetry.Client
}

func newReloadingRequester(ctx context.Context, settings config.Settings, log *logger.Logger, tracker telemetry.Client) (*reloadingRequester, error) {
	r, err := buildRequester(ctx, settings, log, tracker)
	if err != nil {
		return nil, err
	}
	return &reloadingRequester{ctx: ctx, current: r, log: log, tracker: tracker}, nil
}

func (r *reloadingRequester) configChanged(e fsnotify.Event) {
	r.log.Info("config file changed", "file", e.Name, "op", e.Op.String())

	r.mu.Lock()
	r.stale = true
	r.mu.Unlock()
}

func (r *reloadingRequester) requester() *roadmap.Requester {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.stale {
		return r.current
	}
	r.stale = false

	settings, err := config.Load()
	if err == nil {
		var next *roadmap.Requester
		if next, err = buildRequester(r.ctx, settings, r.log, r.tracker); err == nil {
			r.current = next
			r.log.Info("requester reloaded", "provider", settings.LLM.Provider, "model", settings.LLM.Model)
			return r.current
		}
	}
	r.log.Warn("config reload failed, keeping previous settings", "error", err)
	return r.current
}

// Request implements the generator interfaces of the UI, server and MCP tool.
func (r *reloadingRequester) Request(ctx context.Context, topic string) (*roadmap.Roadmap, error) {
	return r.requester().Request(ctx, topic)
}
