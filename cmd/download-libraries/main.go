//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command download-libraries fetches the third-party SDK archives needed to
// build the engine into the downloads directory.
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rakeengine/buildtools/downloader"
	"github.com/rakeengine/buildtools/internal/cli"
	"github.com/rakeengine/buildtools/internal/console"
)

var libraryURLs = []string{
	"https://sdk.lunarg.com/sdk/download/1.3.261.1/windows/VulkanSDK-1.3.261.1-Installer.exe",
	"https://github.com/microsoft/GDK/archive/refs/tags/June_2023_Update_3.zip",
	"https://storage.googleapis.com/tensorflow/libtensorflow/libtensorflow-gpu-windows-x86_64-2.10.0.zip",
}

const downloadDir = "downloads"

var rootCmd = &cobra.Command{
	Use:   "download-libraries",
	Short: "Download the SDKs and libraries required by the engine",
	Args:  cobra.NoArgs,
	Run:   run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("dir", downloadDir, "destination directory")
	flags.StringSlice("url", libraryURLs, "URL to download (repeatable or comma separated, replaces the default list; RAKE_URL accepts commas or spaces)")
	flags.Bool("no-progress", false, "disable the progress bar")
	cli.RegisterLogFlag(rootCmd)
}

func run(cmd *cobra.Command, _ []string) {
	ctx, v, err := cli.Setup(cmd)
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}
	logger := log.FromContext(ctx)

	fetcher := downloader.NewFetcher(v.GetString("dir"), downloader.Config{}, os.Stdout)
	if !v.GetBool("no-progress") {
		fetcher.Progress = progressBars(os.Stdout)
	}

	summary, err := fetcher.Fetch(ctx, cli.StringSlice(v, "url"))
	if err != nil {
		logger.Fatal("Download aborted", "error", err)
	}
	logger.Debug("Done", "downloaded", len(summary.Downloaded), "failed", len(summary.Failed))
}

// progressBars labels each bar with the file name, or with the URL when no
// name can be derived; the fetcher reports that error itself.
func progressBars(w io.Writer) func(downloader.Task) downloader.ProgressReporter {
	return func(task downloader.Task) downloader.ProgressReporter {
		label, err := task.FileName()
		if err != nil {
			label = task.URL
		}
		return console.NewBar(w, label)
	}
}

func main() {
	cli.Execute(rootCmd)
}
