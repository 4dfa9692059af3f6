package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mad-Pixels/ci-actions/internal/alog"
	"github.com/Mad-Pixels/ci-actions/internal/audit"
	"github.com/Mad-Pixels/ci-actions/internal/awscli"
	"github.com/Mad-Pixels/ci-actions/internal/config"
	"github.com/Mad-Pixels/ci-actions/internal/masker"
	"github.com/Mad-Pixels/ci-actions/internal/output"
	"github.com/Mad-Pixels/ci-actions/internal/provider"
	"github.com/Mad-Pixels/ci-actions/internal/runner"
	"github.com/Mad-Pixels/ci-actions/internal/terraform"
)

// runtime holds the wired execution stack for one action invocation.
type runtime struct {
	cfg       *config.Config
	router    *output.Router
	runner    *runner.Runner
	audit     *audit.Logger
	auditFile *os.File
}

// newRuntime validates credentials and assembles the masking pipeline,
// the subprocess runner, and the audit logger.
func newRuntime(c *config.Config) (*runtime, error) {
	prov := provider.AWSFromEnv()
	if err := prov.Validate(); err != nil {
		return nil, err
	}

	router, err := buildRouter(c, prov)
	if err != nil {
		return nil, err
	}

	rt := &runtime{
		cfg:    c,
		router: router,
		runner: runner.New(router, runner.StandardValidator()),
	}

	if f, err := alog.OpenLogFile(auditPath()); err != nil {
		alog.Warn("audit log unavailable: %v", err)
	} else {
		rt.audit = audit.NewLogger(f)
		rt.auditFile = f
	}
	return rt, nil
}

func (rt *runtime) Close() {
	if rt.auditFile != nil {
		_ = rt.auditFile.Close()
	}
}

// buildRouter assembles the masking pipeline: resource-identifier
// patterns first, then every literal secret value from the provider and
// the TF_VAR_/AWS_VAR_ environment.
func buildRouter(c *config.Config, prov *provider.AWS) (*output.Router, error) {
	regex, err := masker.NewRegex(prov.MaskPatterns(), c.Mask)
	if err != nil {
		return nil, fmt.Errorf("build mask pipeline: %w", err)
	}

	secrets := prov.SensitiveValues()
	secrets = append(secrets, terraform.VarValues(terraform.CollectVars())...)
	secrets = append(secrets, awscli.VarValues(awscli.CollectVars())...)

	pipe := masker.NewPipeline(regex, masker.NewEqual(secrets, c.Mask))
	return output.NewRouter(pipe, output.NewStdoutSink(), output.NewStderrSink()), nil
}

// auditPath puts the audit trail next to the operational log.
func auditPath() string {
	return filepath.Join(filepath.Dir(alog.DefaultLogPath()), "audit.log")
}

func (rt *runtime) timeout() time.Duration {
	return time.Duration(rt.cfg.TimeoutSec) * time.Second
}

func (rt *runtime) workingDir() string {
	if rt.cfg.WorkingDir != "" {
		return rt.cfg.WorkingDir
	}
	return "."
}

// startRun opens the audit trail for one chain run. Command lines are
// redacted before they touch the audit log.
func (rt *runtime) startRun(action, bin string, argsList [][]string) string {
	runID := audit.NewRunID()
	_ = rt.audit.LogRunStart(runID, action)
	for i, args := range argsList {
		line := rt.router.Redact(strings.Join(append([]string{bin}, args...), " "))
		_ = rt.audit.LogStep(runID, action, i+1, line)
	}
	return runID
}

// finishRun records the outcome and converts a non-zero exit code into
// an ExitCodeError for main.
func (rt *runtime) finishRun(runID, action string, start time.Time, code int, err error) error {
	if err != nil {
		_ = rt.audit.LogError(runID, action, err.Error())
		return err
	}
	_ = rt.audit.LogComplete(runID, action, code, time.Since(start))
	if code != 0 {
		return NewExitCodeError(code)
	}
	return nil
}
