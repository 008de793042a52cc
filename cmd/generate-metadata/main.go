//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command generate-metadata writes the engine's build metadata header.
// It must be run from the project root, where the include directory lives.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rakeengine/buildtools/internal/cli"
	"github.com/rakeengine/buildtools/metadata"
)

const (
	projectName    = "RakeEngine"
	projectVersion = "0.0"
	outputFile     = "./include/metadata.hpp"
)

var rootCmd = &cobra.Command{
	Use:   "generate-metadata",
	Short: "Generate the build metadata header",
	Args:  cobra.NoArgs,
	Run:   run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("project-name", projectName, "project name")
	flags.String("project-version", projectVersion, "project version")
	flags.StringP("output", "o", outputFile, "header path, relative to the working directory")
	cli.RegisterLogFlag(rootCmd)
}

func run(cmd *cobra.Command, _ []string) {
	ctx, v, err := cli.Setup(cmd)
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	emitter := metadata.NewEmitter(
		v.GetString("project-name"),
		v.GetString("project-version"),
		v.GetString("output"),
		os.Stdout,
	)
	if _, err := emitter.Emit(ctx); err != nil {
		log.FromContext(ctx).Fatal("Metadata generation failed", "error", err)
	}
}

func main() {
	cli.Execute(rootCmd)
}
