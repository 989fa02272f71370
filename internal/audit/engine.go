package audit

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/cerascan/internal/clone"
	"github.com/dshills/cerascan/internal/collect"
	"github.com/dshills/cerascan/internal/config"
	"github.com/dshills/cerascan/internal/llm"
	"github.com/dshills/cerascan/internal/netcheck"
	"github.com/dshills/cerascan/internal/prompt"
)

// Completer is the slice of the LLM client the engine needs.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Engine runs one analysis: clone, collect, build prompt, call the model,
// sanitize the reply.
type Engine struct {
	cfg    config.Config
	client Completer
	log    *zap.Logger
}

// NewEngine wires an engine from resolved configuration and a client.
func NewEngine(cfg config.Config, client Completer, log *zap.Logger) *Engine {
	return &Engine{cfg: cfg, client: client, log: log}
}

// Run executes the pipeline for one request and returns the sanitized model
// reply. The first failing stage short-circuits the rest; the cloned
// workspace is removed whichever way the run ends.
func (e *Engine) Run(ctx context.Context, req Request) (string, error) {
	e.log.Info("starting analysis",
		zap.String("url", req.RepoURL),
		zap.String("branch", req.Branch))

	netcheck.Host(netcheck.URLHost(req.RepoURL), e.log)
	netcheck.Host(netcheck.URLHost(e.cfg.BaseURL), e.log)

	ws, err := clone.NewFetcher(e.cfg.CloneDir, e.log).Shallow(ctx, req.RepoURL, req.Branch)
	if err != nil {
		return "", fmt.Errorf("clone: %w", err)
	}
	defer ws.Remove()
	e.log.Info("clone successful", zap.String("workspace", ws.Path))

	files, err := collect.SourceFiles(ws.Path)
	if err != nil {
		return "", fmt.Errorf("collecting source files: %w", err)
	}
	e.log.Info("collected source files", zap.Int("count", len(files)))

	p := prompt.Build(files, ws.Path, req.RepoURL, req.Branch, prompt.Options{
		Prefix: req.Prefix,
		Redact: e.cfg.Redact,
	}, e.log)
	e.log.Info("prompt built", zap.Int("chars", len(p)))

	raw, err := e.client.Complete(ctx, p)
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	e.log.Info("completion successful")

	return llm.Sanitize(raw), nil
}
