package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	latex2md "github.com/alnah/go-latex2md"
	"github.com/alnah/go-latex2md/internal/yamlutil"
)

// runStages prints the effective stage order, or every name with --list.
func runStages(args []string, env *Environment) error {
	flags, err := parseStagesFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	if flags.list {
		printNameList(env, latex2md.Profiles(), latex2md.StageNames())
		return nil
	}

	cfg, err := loadEffectiveConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	mergePipelineFlags(flags.pipeline, cfg)

	conv, err := newConverter(cfg, zerolog.Nop())
	if err != nil {
		return err
	}
	for _, name := range conv.Stages() {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}

func printNameList(env *Environment, profiles, stages []string) {
	fmt.Fprintf(env.Stdout, "Profiles: %s\n", strings.Join(profiles, ", "))
	fmt.Fprintln(env.Stdout, "Stages:")
	for _, name := range stages {
		fmt.Fprintf(env.Stdout, "  %s\n", name)
	}
}

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadEffectiveConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if _, err := env.Stdout.Write(out); err != nil {
		return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
	}
	return nil
}
